package repo

import (
	"context"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

// CredentialRepo stores provider credentials per session.
// Implementations must allow concurrent access on different sessions and
// read-most-recent semantics on the same session.
type CredentialRepo interface {
	// Get returns the credentials for a session, or domain.ErrNotConnected.
	Get(ctx context.Context, sessionID string) (*domain.SessionCredentials, error)

	// Put saves credentials (overwrites on reconnect).
	Put(ctx context.Context, creds *domain.SessionCredentials) error

	// Delete removes the credentials for a session.
	Delete(ctx context.Context, sessionID string) error
}
