package domain

import "errors"

var (
	// ErrInvalidHandshakeState indicates an unknown, expired, already-consumed,
	// or mismatched handshake state. Callers cannot distinguish these cases.
	ErrInvalidHandshakeState = errors.New("invalid or expired handshake state")

	// ErrAuthorizationDenied indicates the provider refused to grant access
	// (user denied the app, or the verifier did not match).
	ErrAuthorizationDenied = errors.New("authorization denied by provider")

	// ErrProviderUnavailable indicates a network failure or timeout reaching
	// the provider.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNotConnected indicates no credentials exist for the session.
	ErrNotConnected = errors.New("session not connected")

	// ErrMediaUploadFailed indicates the media upload step failed; the publish
	// is aborted, never downgraded to a text-only post.
	ErrMediaUploadFailed = errors.New("media upload failed")

	// ErrPublishFailed indicates the provider rejected the publish call.
	ErrPublishFailed = errors.New("publish failed")

	// ErrGenerationFailed indicates the text-generation provider failed.
	// The composer absorbs it locally via fallback text; it never reaches
	// the end user as an error.
	ErrGenerationFailed = errors.New("text generation failed")
)
