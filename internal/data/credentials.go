package data

import (
	"context"
	"sync"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// credentialRepo is an in-memory credential store. Credentials live as long
// as the owning session; durability is intentionally out of scope.
type credentialRepo struct {
	mu    sync.RWMutex
	creds map[string]domain.SessionCredentials
}

// NewCredentialRepo creates an in-memory credential repository.
func NewCredentialRepo() repo.CredentialRepo {
	return &credentialRepo{creds: make(map[string]domain.SessionCredentials)}
}

func (r *credentialRepo) Get(ctx context.Context, sessionID string) (*domain.SessionCredentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.creds[sessionID]
	if !ok {
		return nil, domain.ErrNotConnected
	}
	return &c, nil
}

func (r *credentialRepo) Put(ctx context.Context, creds *domain.SessionCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creds[creds.SessionID] = *creds
	return nil
}

func (r *credentialRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.creds, sessionID)
	return nil
}
