package repo

import (
	"context"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

// RequestToken is a provider-issued temporary token pair for one handshake.
type RequestToken struct {
	Token  string
	Secret string
}

// AccessToken is a long-lived provider credential.
type AccessToken struct {
	Token  string
	Secret string
}

// ProviderRepo is the social-media provider interface: the three OAuth legs
// plus the authenticated posting operations.
type ProviderRepo interface {
	// FetchRequestToken obtains a temporary request token, registering
	// callbackURL as the redirect target.
	FetchRequestToken(ctx context.Context, callbackURL string) (*RequestToken, error)

	// AuthorizationURL builds the URL the user must visit to authorize the app.
	AuthorizationURL(requestToken string) string

	// ExchangeAccessToken trades a consumed request token plus verifier for a
	// long-lived access token. Provider rejection maps to
	// domain.ErrAuthorizationDenied, network failure to
	// domain.ErrProviderUnavailable.
	ExchangeAccessToken(ctx context.Context, reqToken RequestToken, verifier string) (*AccessToken, error)

	// FetchProfile returns the authenticated account's profile snapshot.
	FetchProfile(ctx context.Context, access AccessToken) (*domain.Profile, error)

	// UploadMedia uploads image bytes and returns the provider media ID.
	UploadMedia(ctx context.Context, access AccessToken, data []byte) (string, error)

	// PublishPost publishes text with an optional media ID and returns the
	// post ID. Provider error text is preserved verbatim.
	PublishPost(ctx context.Context, access AccessToken, text, mediaID string) (string, error)
}
