package repo

import (
	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

// HandshakeRepo tracks in-flight OAuth negotiations between the two HTTP
// legs of the handshake, keyed by an unguessable state identifier.
type HandshakeRepo interface {
	// Open registers a fresh handshake under stateID.
	Open(stateID, sessionID, requestToken, tokenSecret string) error

	// Consume atomically checks and deletes a handshake. A state ID yields
	// its record at most once. Unknown ID, token mismatch, and expired entry
	// all fail with domain.ErrInvalidHandshakeState without mutating the
	// store (beyond removal of the expired entry itself).
	Consume(stateID, providedToken string) (*domain.HandshakeRequest, error)
}
