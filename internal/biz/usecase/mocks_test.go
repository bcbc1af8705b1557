package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// Mock implementations shared by the usecase tests.

type mockCredentialRepo struct {
	mu    sync.Mutex
	creds map[string]*domain.SessionCredentials
	gets  int
}

func newMockCredentialRepo() *mockCredentialRepo {
	return &mockCredentialRepo{creds: make(map[string]*domain.SessionCredentials)}
}

func (m *mockCredentialRepo) Get(ctx context.Context, sessionID string) (*domain.SessionCredentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	c, ok := m.creds[sessionID]
	if !ok {
		return nil, domain.ErrNotConnected
	}
	return c, nil
}

func (m *mockCredentialRepo) Put(ctx context.Context, creds *domain.SessionCredentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creds[creds.SessionID] = creds
	return nil
}

func (m *mockCredentialRepo) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.creds, sessionID)
	return nil
}

type mockHandshakeRepo struct {
	mu      sync.Mutex
	pending map[string]domain.HandshakeRequest
}

func newMockHandshakeRepo() *mockHandshakeRepo {
	return &mockHandshakeRepo{pending: make(map[string]domain.HandshakeRequest)}
}

func (m *mockHandshakeRepo) Open(stateID, sessionID, requestToken, tokenSecret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[stateID] = domain.HandshakeRequest{
		StateID:      stateID,
		SessionID:    sessionID,
		RequestToken: requestToken,
		TokenSecret:  tokenSecret,
	}
	return nil
}

func (m *mockHandshakeRepo) Consume(stateID, providedToken string) (*domain.HandshakeRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.pending[stateID]
	if !ok || h.RequestToken != providedToken {
		return nil, domain.ErrInvalidHandshakeState
	}
	delete(m.pending, stateID)
	return &h, nil
}

type mockProvider struct {
	mu sync.Mutex

	requestTokenErr error
	exchangeErr     error
	profileErr      error
	uploadErr       error
	publishErr      error

	callbackURL  string
	lastText     string
	lastMediaID  string
	uploadCalls  int
	publishCalls int

	profile domain.Profile
	mediaID string
	postID  string
}

func (m *mockProvider) FetchRequestToken(ctx context.Context, callbackURL string) (*repo.RequestToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.requestTokenErr != nil {
		return nil, m.requestTokenErr
	}
	m.callbackURL = callbackURL
	return &repo.RequestToken{Token: "req-token", Secret: "req-secret"}, nil
}

func (m *mockProvider) AuthorizationURL(requestToken string) string {
	return "https://provider.example/oauth/authorize?oauth_token=" + requestToken
}

func (m *mockProvider) ExchangeAccessToken(ctx context.Context, reqToken repo.RequestToken, verifier string) (*repo.AccessToken, error) {
	if m.exchangeErr != nil {
		return nil, m.exchangeErr
	}
	return &repo.AccessToken{Token: "access-token", Secret: "access-secret"}, nil
}

func (m *mockProvider) FetchProfile(ctx context.Context, access repo.AccessToken) (*domain.Profile, error) {
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	return &m.profile, nil
}

func (m *mockProvider) UploadMedia(ctx context.Context, access repo.AccessToken, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadCalls++
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	return m.mediaID, nil
}

func (m *mockProvider) PublishPost(ctx context.Context, access repo.AccessToken, text, mediaID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishCalls++
	if m.publishErr != nil {
		return "", m.publishErr
	}
	m.lastText = text
	m.lastMediaID = mediaID
	return m.postID, nil
}

type mockGenerator struct {
	caption     string
	captionErr  error
	hashtags    string
	hashtagsErr error
	reply       string
	replyErr    error
	imageURL    string
	imageErr    error
}

func (m *mockGenerator) GenerateCaption(ctx context.Context, brief string) (string, error) {
	return m.caption, m.captionErr
}

func (m *mockGenerator) GenerateHashtags(ctx context.Context, brief string) (string, error) {
	return m.hashtags, m.hashtagsErr
}

func (m *mockGenerator) Reply(ctx context.Context, systemPrompt string, history []domain.Message) (string, error) {
	return m.reply, m.replyErr
}

func (m *mockGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return m.imageURL, m.imageErr
}

type mockHistory struct {
	mu        sync.Mutex
	messages  []domain.Message
	lastLimit int
}

func (m *mockHistory) Append(ctx context.Context, msg *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockHistory) Recent(ctx context.Context, sessionID string, limit int) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	if len(m.messages) > limit {
		return m.messages[len(m.messages)-limit:], nil
	}
	return m.messages, nil
}

func (m *mockHistory) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
	return nil
}

func (m *mockHistory) CleanupStale(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (m *mockHistory) Close() error { return nil }

type mockMedia struct {
	data map[string][]byte
}

func (m *mockMedia) Resolve(ctx context.Context, imageRef string) ([]byte, error) {
	if d, ok := m.data[imageRef]; ok {
		return d, nil
	}
	return nil, errors.New("image not found")
}
