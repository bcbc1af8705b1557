package data

import (
	"sync"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// DefaultHandshakeTTL bounds how long an unconsumed handshake stays valid.
const DefaultHandshakeTTL = 10 * time.Minute

// handshakeRepo tracks in-flight OAuth negotiations in memory. Entries are
// consumed at most once; stale entries are swept eagerly on each Open and
// rejected on Consume, indistinguishable from never-existed.
type handshakeRepo struct {
	mu      sync.Mutex
	pending map[string]domain.HandshakeRequest
	ttl     time.Duration
	now     func() time.Time
}

// NewHandshakeRepo creates an in-memory handshake tracker. A non-positive ttl
// falls back to DefaultHandshakeTTL.
func NewHandshakeRepo(ttl time.Duration) repo.HandshakeRepo {
	if ttl <= 0 {
		ttl = DefaultHandshakeTTL
	}
	return &handshakeRepo{
		pending: make(map[string]domain.HandshakeRequest),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *handshakeRepo) Open(stateID, sessionID, requestToken, tokenSecret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	r.pending[stateID] = domain.HandshakeRequest{
		StateID:      stateID,
		SessionID:    sessionID,
		RequestToken: requestToken,
		TokenSecret:  tokenSecret,
		CreatedAt:    now,
	}
	return nil
}

// Consume is a single atomic check-and-delete: two racing callbacks on the
// same state ID cannot both obtain the record.
func (r *handshakeRepo) Consume(stateID, providedToken string) (*domain.HandshakeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.pending[stateID]
	if !ok {
		return nil, domain.ErrInvalidHandshakeState
	}
	if h.Expired(r.ttl, r.now()) {
		delete(r.pending, stateID)
		return nil, domain.ErrInvalidHandshakeState
	}
	if h.RequestToken != providedToken {
		return nil, domain.ErrInvalidHandshakeState
	}

	delete(r.pending, stateID)
	return &h, nil
}

func (r *handshakeRepo) sweepLocked(now time.Time) {
	for id, h := range r.pending {
		if h.Expired(r.ttl, now) {
			delete(r.pending, id)
		}
	}
}
