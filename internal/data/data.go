package data

import (
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
	"github.com/pixaro/brand-social-bridge/internal/infra/openai"
	"github.com/pixaro/brand-social-bridge/internal/infra/twitter"
)

// Repositories contains all repositories
type Repositories struct {
	Credentials repo.CredentialRepo
	Handshakes  repo.HandshakeRepo
	Provider    repo.ProviderRepo
	Generator   repo.GeneratorRepo
	Media       repo.MediaRepo
	History     repo.HistoryRepo
}

// NewRepositories creates all repositories
func NewRepositories(
	twitterClient *twitter.Client,
	openaiClient *openai.Client,
	historyDBPath string,
	uploadDir string,
	handshakeTTL time.Duration,
) (*Repositories, error) {
	historyRepo, err := NewHistoryRepo(historyDBPath)
	if err != nil {
		return nil, err
	}

	var generator repo.GeneratorRepo
	if openaiClient != nil {
		generator = NewGeneratorRepo(openaiClient)
	}

	return &Repositories{
		Credentials: NewCredentialRepo(),
		Handshakes:  NewHandshakeRepo(handshakeTTL),
		Provider:    NewTwitterRepo(twitterClient),
		Generator:   generator,
		Media:       NewMediaRepo(uploadDir),
		History:     historyRepo,
	}, nil
}
