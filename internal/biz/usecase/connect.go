package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// ConnectUsecase drives the three-legged OAuth handshake:
// Idle -> AwaitingAuthorization -> Connected.
type ConnectUsecase struct {
	provider    repo.ProviderRepo
	handshakes  repo.HandshakeRepo
	credentials repo.CredentialRepo
	callbackURL string
}

// NewConnectUsecase creates a new connect usecase. callbackURL is the
// absolute URL of the OAuth callback route.
func NewConnectUsecase(
	provider repo.ProviderRepo,
	handshakes repo.HandshakeRepo,
	credentials repo.CredentialRepo,
	callbackURL string,
) *ConnectUsecase {
	return &ConnectUsecase{
		provider:    provider,
		handshakes:  handshakes,
		credentials: credentials,
		callbackURL: callbackURL,
	}
}

// BeginConnect starts a handshake for a session and returns the
// authorization URL to redirect the user to. Each call mints a fresh
// request token and state; earlier attempts for the same session stay
// independent.
func (uc *ConnectUsecase) BeginConnect(ctx context.Context, sessionID string) (string, error) {
	// The state rides in the per-handshake callback URL: the provider
	// preserves callback query parameters when redirecting, which is how the
	// second leg finds its handshake record.
	stateID := uuid.NewString()
	callbackURL := appendQuery(uc.callbackURL, "state", stateID)

	reqToken, err := uc.provider.FetchRequestToken(ctx, callbackURL)
	if err != nil {
		return "", fmt.Errorf("fetch request token: %w", err)
	}

	if err := uc.handshakes.Open(stateID, sessionID, reqToken.Token, reqToken.Secret); err != nil {
		return "", fmt.Errorf("open handshake: %w", err)
	}

	return uc.provider.AuthorizationURL(reqToken.Token), nil
}

// CompleteConnect finishes a handshake from the provider's redirect. On any
// failure the session stays unconnected and the credential store untouched;
// the user must restart the handshake, since request tokens are single-use.
func (uc *ConnectUsecase) CompleteConnect(ctx context.Context, stateID, oauthToken, verifier string) (*domain.SessionCredentials, error) {
	if stateID == "" || oauthToken == "" || verifier == "" {
		return nil, fmt.Errorf("%w: missing callback parameters", domain.ErrInvalidHandshakeState)
	}

	handshake, err := uc.handshakes.Consume(stateID, oauthToken)
	if err != nil {
		return nil, err
	}

	access, err := uc.provider.ExchangeAccessToken(ctx, repo.RequestToken{
		Token:  handshake.RequestToken,
		Secret: handshake.TokenSecret,
	}, verifier)
	if err != nil {
		return nil, fmt.Errorf("exchange access token: %w", err)
	}

	profile, err := uc.provider.FetchProfile(ctx, *access)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	creds := &domain.SessionCredentials{
		SessionID:    handshake.SessionID,
		AccessToken:  access.Token,
		AccessSecret: access.Secret,
		Profile:      *profile,
		ConnectedAt:  time.Now(),
	}
	if err := uc.credentials.Put(ctx, creds); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}
	return creds, nil
}

// Status reports whether a session is connected and under which handle.
func (uc *ConnectUsecase) Status(ctx context.Context, sessionID string) (connected bool, handle string) {
	creds, err := uc.credentials.Get(ctx, sessionID)
	if err != nil {
		return false, ""
	}
	return true, creds.Profile.Handle
}

// Disconnect removes a session's credentials.
func (uc *ConnectUsecase) Disconnect(ctx context.Context, sessionID string) error {
	return uc.credentials.Delete(ctx, sessionID)
}

func appendQuery(rawURL, key, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
