package domain

import "time"

// HandshakeRequest is an in-flight OAuth negotiation, bridging the two HTTP
// legs of the three-legged handshake. It stores only the data the second leg
// needs: the temporary token and its secret. Consumed exactly once.
type HandshakeRequest struct {
	StateID      string
	SessionID    string
	RequestToken string
	TokenSecret  string
	CreatedAt    time.Time
}

// Expired reports whether the handshake is older than ttl.
func (h *HandshakeRequest) Expired(ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(h.CreatedAt) > ttl
}
