package data

import (
	"context"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
	"github.com/pixaro/brand-social-bridge/internal/infra/twitter"
)

// twitterRepo adapts the Twitter client to the provider repository interface.
type twitterRepo struct {
	client *twitter.Client
}

// NewTwitterRepo creates a provider repository backed by the Twitter client.
func NewTwitterRepo(client *twitter.Client) repo.ProviderRepo {
	return &twitterRepo{client: client}
}

func (r *twitterRepo) FetchRequestToken(ctx context.Context, callbackURL string) (*repo.RequestToken, error) {
	token, secret, err := r.client.FetchRequestToken(ctx, callbackURL)
	if err != nil {
		return nil, err
	}
	return &repo.RequestToken{Token: token, Secret: secret}, nil
}

func (r *twitterRepo) AuthorizationURL(requestToken string) string {
	return r.client.AuthorizationURL(requestToken)
}

func (r *twitterRepo) ExchangeAccessToken(ctx context.Context, reqToken repo.RequestToken, verifier string) (*repo.AccessToken, error) {
	token, secret, err := r.client.ExchangeAccessToken(ctx, reqToken.Token, reqToken.Secret, verifier)
	if err != nil {
		return nil, err
	}
	return &repo.AccessToken{Token: token, Secret: secret}, nil
}

func (r *twitterRepo) FetchProfile(ctx context.Context, access repo.AccessToken) (*domain.Profile, error) {
	return r.client.FetchProfile(ctx, access.Token, access.Secret)
}

func (r *twitterRepo) UploadMedia(ctx context.Context, access repo.AccessToken, data []byte) (string, error) {
	return r.client.UploadMedia(ctx, access.Token, access.Secret, data)
}

func (r *twitterRepo) PublishPost(ctx context.Context, access repo.AccessToken, text, mediaID string) (string, error) {
	return r.client.PublishPost(ctx, access.Token, access.Secret, text, mediaID)
}
