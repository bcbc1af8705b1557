package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

func connectedCreds(sessionID, handle string) *domain.SessionCredentials {
	return &domain.SessionCredentials{
		SessionID:    sessionID,
		AccessToken:  "access-token",
		AccessSecret: "access-secret",
		Profile:      domain.Profile{Handle: handle},
	}
}

func TestPublish_NotConnected(t *testing.T) {
	creds := newMockCredentialRepo()
	provider := &mockProvider{}
	uc := NewPublishUsecase(creds, provider, &mockMedia{})

	_, err := uc.Publish(context.Background(), "sess-1", "hello", "")
	if !errors.Is(err, domain.ErrNotConnected) {
		t.Fatalf("Expected ErrNotConnected, got %v", err)
	}

	if provider.uploadCalls != 0 || provider.publishCalls != 0 {
		t.Errorf("Expected zero provider calls, got upload=%d publish=%d",
			provider.uploadCalls, provider.publishCalls)
	}
}

func TestPublish_TextOnly(t *testing.T) {
	creds := newMockCredentialRepo()
	creds.Put(context.Background(), connectedCreds("sess-1", "brandco"))
	provider := &mockProvider{postID: "12345"}
	uc := NewPublishUsecase(creds, provider, &mockMedia{})

	result, err := uc.Publish(context.Background(), "sess-1", "hello world", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.PostID != "12345" {
		t.Errorf("Expected post ID 12345, got %q", result.PostID)
	}
	if !strings.Contains(result.PostURL, "brandco") {
		t.Errorf("Expected post URL to contain handle, got %q", result.PostURL)
	}
	if !strings.Contains(result.PostURL, "12345") {
		t.Errorf("Expected post URL to contain post ID, got %q", result.PostURL)
	}
	if provider.uploadCalls != 0 {
		t.Errorf("Expected no media upload for text-only post, got %d", provider.uploadCalls)
	}
}

func TestPublish_WithImage(t *testing.T) {
	creds := newMockCredentialRepo()
	creds.Put(context.Background(), connectedCreds("sess-1", "brandco"))
	provider := &mockProvider{postID: "777", mediaID: "media-1"}
	media := &mockMedia{data: map[string][]byte{"photo.png": []byte("png-bytes")}}
	uc := NewPublishUsecase(creds, provider, media)

	result, err := uc.Publish(context.Background(), "sess-1", "caption", "photo.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if provider.lastMediaID != "media-1" {
		t.Errorf("Expected publish with media-1, got %q", provider.lastMediaID)
	}
	if result.PostURL != "https://twitter.com/brandco/status/777" {
		t.Errorf("Unexpected post URL: %q", result.PostURL)
	}
}

func TestPublish_UnresolvableImageAborts(t *testing.T) {
	creds := newMockCredentialRepo()
	creds.Put(context.Background(), connectedCreds("sess-1", "brandco"))
	provider := &mockProvider{postID: "777"}
	uc := NewPublishUsecase(creds, provider, &mockMedia{})

	_, err := uc.Publish(context.Background(), "sess-1", "caption", "missing.png")
	if !errors.Is(err, domain.ErrMediaUploadFailed) {
		t.Fatalf("Expected ErrMediaUploadFailed, got %v", err)
	}

	// No partial post without the intended image.
	if provider.publishCalls != 0 {
		t.Errorf("Expected no publish after failed media resolve, got %d", provider.publishCalls)
	}
}

func TestPublish_UploadFailureAborts(t *testing.T) {
	creds := newMockCredentialRepo()
	creds.Put(context.Background(), connectedCreds("sess-1", "brandco"))
	provider := &mockProvider{uploadErr: domain.ErrMediaUploadFailed}
	media := &mockMedia{data: map[string][]byte{"photo.png": []byte("png-bytes")}}
	uc := NewPublishUsecase(creds, provider, media)

	_, err := uc.Publish(context.Background(), "sess-1", "caption", "photo.png")
	if !errors.Is(err, domain.ErrMediaUploadFailed) {
		t.Fatalf("Expected ErrMediaUploadFailed, got %v", err)
	}
	if provider.publishCalls != 0 {
		t.Errorf("Expected no publish after failed upload, got %d", provider.publishCalls)
	}
}

func TestPublish_ProviderRejection(t *testing.T) {
	creds := newMockCredentialRepo()
	creds.Put(context.Background(), connectedCreds("sess-1", "brandco"))
	provider := &mockProvider{
		publishErr: errors.New("publish failed: duplicate content"),
	}
	uc := NewPublishUsecase(creds, provider, &mockMedia{})

	_, err := uc.Publish(context.Background(), "sess-1", "caption", "")
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "duplicate content") {
		t.Errorf("Expected provider error text preserved, got %v", err)
	}
}
