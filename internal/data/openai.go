package data

import (
	"context"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
	"github.com/pixaro/brand-social-bridge/internal/infra/openai"
)

// openaiRepo adapts the OpenAI client to the generator repository interface.
type openaiRepo struct {
	client *openai.Client
}

// NewGeneratorRepo creates a generator repository backed by the OpenAI client.
func NewGeneratorRepo(client *openai.Client) repo.GeneratorRepo {
	return &openaiRepo{client: client}
}

func (r *openaiRepo) GenerateCaption(ctx context.Context, brief string) (string, error) {
	return r.client.GenerateCaption(ctx, brief)
}

func (r *openaiRepo) GenerateHashtags(ctx context.Context, brief string) (string, error) {
	return r.client.GenerateHashtags(ctx, brief)
}

func (r *openaiRepo) Reply(ctx context.Context, systemPrompt string, history []domain.Message) (string, error) {
	return r.client.Reply(ctx, systemPrompt, history)
}

func (r *openaiRepo) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return r.client.GenerateImage(ctx, prompt)
}
