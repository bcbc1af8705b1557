package data

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

func newTestHistoryRepo(t *testing.T) repo.HistoryRepo {
	t.Helper()
	r, err := NewHistoryRepo(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewHistoryRepo failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestHistoryRepo_AppendAndRecent(t *testing.T) {
	r := newTestHistoryRepo(t)
	ctx := context.Background()

	msgs := []*domain.Message{
		{SessionID: "sess-1", Role: domain.RoleUser, Content: "hello"},
		{SessionID: "sess-1", Role: domain.RoleAssistant, Content: "hi there"},
		{SessionID: "sess-2", Role: domain.RoleUser, Content: "other session"},
	}
	for _, m := range msgs {
		if err := r.Append(ctx, m); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := r.Recent(ctx, "sess-1", 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(got))
	}
	if got[0].Content != "hello" || got[1].Content != "hi there" {
		t.Errorf("Expected oldest-first ordering, got %+v", got)
	}
	if got[0].Role != domain.RoleUser || got[1].Role != domain.RoleAssistant {
		t.Errorf("Roles not preserved: %+v", got)
	}
}

func TestHistoryRepo_RecentHonorsLimit(t *testing.T) {
	r := newTestHistoryRepo(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		err := r.Append(ctx, &domain.Message{
			SessionID: "sess-1",
			Role:      domain.RoleUser,
			Content:   fmt.Sprintf("message %d", i),
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := r.Recent(ctx, "sess-1", 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(got))
	}
	// The limit keeps the newest messages, still returned oldest first.
	if got[0].Content != "message 7" || got[2].Content != "message 9" {
		t.Errorf("Expected newest window, got %+v", got)
	}
}

func TestHistoryRepo_Clear(t *testing.T) {
	r := newTestHistoryRepo(t)
	ctx := context.Background()

	r.Append(ctx, &domain.Message{SessionID: "sess-1", Role: domain.RoleUser, Content: "a"})
	r.Append(ctx, &domain.Message{SessionID: "sess-2", Role: domain.RoleUser, Content: "b"})

	if err := r.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	got, _ := r.Recent(ctx, "sess-1", 10)
	if len(got) != 0 {
		t.Errorf("Expected empty history after clear, got %d messages", len(got))
	}
	other, _ := r.Recent(ctx, "sess-2", 10)
	if len(other) != 1 {
		t.Errorf("Expected other session untouched, got %d messages", len(other))
	}
}

func TestHistoryRepo_CleanupStale(t *testing.T) {
	r := newTestHistoryRepo(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	r.Append(ctx, &domain.Message{SessionID: "sess-1", Role: domain.RoleUser, Content: "stale", CreatedAt: old})
	r.Append(ctx, &domain.Message{SessionID: "sess-1", Role: domain.RoleUser, Content: "fresh"})

	deleted, err := r.CleanupStale(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CleanupStale failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted message, got %d", deleted)
	}

	got, _ := r.Recent(ctx, "sess-1", 10)
	if len(got) != 1 || got[0].Content != "fresh" {
		t.Errorf("Expected only fresh message to survive, got %+v", got)
	}
}
