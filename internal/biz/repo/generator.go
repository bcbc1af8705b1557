package repo

import (
	"context"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

// GeneratorRepo is the text-generation provider interface. All methods are
// bounded by timeouts; failures are plain errors for the caller to absorb.
type GeneratorRepo interface {
	// GenerateCaption produces a short post caption for the given brief.
	GenerateCaption(ctx context.Context, brief string) (string, error)

	// GenerateHashtags produces a space-separated hashtag string.
	GenerateHashtags(ctx context.Context, brief string) (string, error)

	// Reply produces a conversational answer given a system prompt and
	// history ending with the current user message.
	Reply(ctx context.Context, systemPrompt string, history []domain.Message) (string, error)

	// GenerateImage renders an image for the prompt and returns its URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
