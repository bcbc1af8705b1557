package repo

import (
	"context"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

// HistoryRepo persists conversation history per session.
type HistoryRepo interface {
	// Append stores one message.
	Append(ctx context.Context, msg *domain.Message) error

	// Recent returns up to limit messages for a session, oldest first.
	Recent(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)

	// Clear removes all history for a session.
	Clear(ctx context.Context, sessionID string) error

	// CleanupStale removes messages older than the given time.
	CleanupStale(ctx context.Context, before time.Time) (int64, error)

	// Close releases the underlying store.
	Close() error
}
