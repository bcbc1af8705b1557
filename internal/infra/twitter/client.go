// Package twitter is the HTTP client for the Twitter/X provider: the
// three-legged OAuth 1.0a handshake plus the authenticated posting calls.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

const (
	defaultAPIBaseURL    = "https://api.twitter.com"
	defaultUploadBaseURL = "https://upload.twitter.com"

	requestTimeout = 15 * time.Second
)

// Client calls the Twitter/X API on behalf of the application (handshake
// legs) or a connected account (posting calls).
type Client struct {
	consumerKey    string
	consumerSecret string

	apiBaseURL    string
	uploadBaseURL string
	httpClient    *http.Client
}

// NewClient creates a new Twitter client with the application's consumer
// credentials.
func NewClient(consumerKey, consumerSecret string) *Client {
	return &Client{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		apiBaseURL:     defaultAPIBaseURL,
		uploadBaseURL:  defaultUploadBaseURL,
		httpClient:     &http.Client{Timeout: requestTimeout},
	}
}

// SetBaseURLs overrides the provider endpoints, used in tests.
func (c *Client) SetBaseURLs(apiBaseURL, uploadBaseURL string) {
	c.apiBaseURL = apiBaseURL
	c.uploadBaseURL = uploadBaseURL
}

func (c *Client) oauthConfig(callbackURL string) *oauth1.Config {
	return &oauth1.Config{
		ConsumerKey:    c.consumerKey,
		ConsumerSecret: c.consumerSecret,
		CallbackURL:    callbackURL,
		Endpoint: oauth1.Endpoint{
			RequestTokenURL: c.apiBaseURL + "/oauth/request_token",
			AuthorizeURL:    c.apiBaseURL + "/oauth/authorize",
			AccessTokenURL:  c.apiBaseURL + "/oauth/access_token",
		},
		HTTPClient: c.httpClient,
	}
}

// FetchRequestToken obtains a temporary request token for one handshake.
// The oauth1 handshake legs carry their own client timeout; ctx is accepted
// for interface symmetry.
func (c *Client) FetchRequestToken(ctx context.Context, callbackURL string) (token, secret string, err error) {
	token, secret, err = c.oauthConfig(callbackURL).RequestToken()
	if err != nil {
		return "", "", classifyHandshakeErr("request token", err, domain.ErrProviderUnavailable)
	}
	return token, secret, nil
}

// AuthorizationURL builds the URL the user must visit to authorize the app.
func (c *Client) AuthorizationURL(requestToken string) string {
	return c.apiBaseURL + "/oauth/authorize?oauth_token=" + url.QueryEscape(requestToken)
}

// ExchangeAccessToken trades a request token plus verifier for a long-lived
// access token.
func (c *Client) ExchangeAccessToken(ctx context.Context, reqToken, reqSecret, verifier string) (token, secret string, err error) {
	token, secret, err = c.oauthConfig("").AccessToken(reqToken, reqSecret, verifier)
	if err != nil {
		// The provider answered but refused the exchange (bad verifier,
		// reused token). Network failures classify as unavailable.
		return "", "", classifyHandshakeErr("access token", err, domain.ErrAuthorizationDenied)
	}
	return token, secret, nil
}

func (c *Client) signedClient(accessToken, accessSecret string) *http.Client {
	config := c.oauthConfig("")
	httpClient := config.Client(oauth1.NoContext, oauth1.NewToken(accessToken, accessSecret))
	httpClient.Timeout = requestTimeout
	return httpClient
}

type profileResponse struct {
	ScreenName     string `json:"screen_name"`
	Name           string `json:"name"`
	FollowersCount int    `json:"followers_count"`
	StatusesCount  int    `json:"statuses_count"`
}

// FetchProfile returns the authenticated account's profile snapshot.
func (c *Client) FetchProfile(ctx context.Context, accessToken, accessSecret string) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiBaseURL+"/1.1/account/verify_credentials.json", nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}

	resp, err := c.signedClient(accessToken, accessSecret).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: profile fetch returned %d: %s",
			domain.ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr profileResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &domain.Profile{
		Handle:      pr.ScreenName,
		DisplayName: pr.Name,
		Followers:   pr.FollowersCount,
		PostCount:   pr.StatusesCount,
	}, nil
}

type mediaUploadResponse struct {
	MediaIDString string `json:"media_id_string"`
}

// UploadMedia uploads image bytes and returns the provider media ID.
func (c *Client) UploadMedia(ctx context.Context, accessToken, accessSecret string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("media", "media")
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.uploadBaseURL+"/1.1/media/upload.json", &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.signedClient(accessToken, accessSecret).Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMediaUploadFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: upload returned %d: %s",
			domain.ErrMediaUploadFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var mr mediaUploadResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return "", fmt.Errorf("%w: decode upload response: %v", domain.ErrMediaUploadFailed, err)
	}
	if mr.MediaIDString == "" {
		return "", fmt.Errorf("%w: upload response missing media id", domain.ErrMediaUploadFailed)
	}
	return mr.MediaIDString, nil
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Media *tweetMedia `json:"media,omitempty"`
}

type tweetMedia struct {
	MediaIDs []string `json:"media_ids"`
}

type tweetResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	Detail string `json:"detail"`
	Title  string `json:"title"`
}

// PublishPost publishes text with an optional media ID and returns the post
// ID. Provider error text is preserved verbatim for the end user.
func (c *Client) PublishPost(ctx context.Context, accessToken, accessSecret, text, mediaID string) (string, error) {
	tr := tweetRequest{Text: text}
	if mediaID != "" {
		tr.Media = &tweetMedia{MediaIDs: []string{mediaID}}
	}

	payload, err := json.Marshal(tr)
	if err != nil {
		return "", fmt.Errorf("encode tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBaseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build tweet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.signedClient(accessToken, accessSecret).Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var twr tweetResponse
	_ = json.Unmarshal(body, &twr)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail := twr.Detail
		if detail == "" {
			detail = strings.TrimSpace(string(body))
		}
		return "", fmt.Errorf("%w: %s", domain.ErrPublishFailed, detail)
	}
	if twr.Data.ID == "" {
		return "", fmt.Errorf("%w: response missing post id", domain.ErrPublishFailed)
	}
	return twr.Data.ID, nil
}

// classifyHandshakeErr wraps a handshake-leg error: transport failures are
// always ErrProviderUnavailable; anything the provider answered with maps to
// the given refusal error.
func classifyHandshakeErr(step string, err error, refusal error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, step, err)
	}
	return fmt.Errorf("%w: %s: %v", refusal, step, err)
}
