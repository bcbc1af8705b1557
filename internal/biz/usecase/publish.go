package usecase

import (
	"context"
	"fmt"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// PublishUsecase executes a publish: credential lookup, optional media
// upload, post creation. No step is retried; failures surface upward as a
// single typed error.
type PublishUsecase struct {
	credentials repo.CredentialRepo
	provider    repo.ProviderRepo
	media       repo.MediaRepo
	postURLBase string
}

// DefaultPostURLBase is the public URL prefix posts are reachable under.
const DefaultPostURLBase = "https://twitter.com"

// NewPublishUsecase creates a new publish usecase.
func NewPublishUsecase(
	credentials repo.CredentialRepo,
	provider repo.ProviderRepo,
	media repo.MediaRepo,
) *PublishUsecase {
	return &PublishUsecase{
		credentials: credentials,
		provider:    provider,
		media:       media,
		postURLBase: DefaultPostURLBase,
	}
}

// Publish posts text with an optional image for a connected session.
// A failed media upload aborts the publish: a text-only post in place of the
// intended image would surprise the user.
func (uc *PublishUsecase) Publish(ctx context.Context, sessionID, text, imageRef string) (*domain.PostResult, error) {
	creds, err := uc.credentials.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	access := repo.AccessToken{Token: creds.AccessToken, Secret: creds.AccessSecret}

	var mediaID string
	if imageRef != "" {
		data, err := uc.media.Resolve(ctx, imageRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMediaUploadFailed, err)
		}
		mediaID, err = uc.provider.UploadMedia(ctx, access, data)
		if err != nil {
			return nil, err
		}
	}

	postID, err := uc.provider.PublishPost(ctx, access, text, mediaID)
	if err != nil {
		return nil, err
	}

	// The post URL derives from the handle and post ID; no extra round trip.
	return &domain.PostResult{
		PostID:  postID,
		PostURL: fmt.Sprintf("%s/%s/status/%s", uc.postURLBase, creds.Profile.Handle, postID),
	}, nil
}
