// Package openai is the text-generation client used for captions, hashtags,
// conversational replies, and image generation.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
)

const (
	defaultModel      = gopenai.GPT4o
	generationTimeout = 30 * time.Second

	// The caption instruction caps at 200 characters to leave headroom for
	// hashtags under the 280-character post ceiling.
	captionCharLimit = 200

	// hashtagCharLimit is the headroom a maximum-length caption leaves under
	// the post ceiling (280 - 200 - 2 for the separator). Hashtags trimmed
	// here never need truncation downstream.
	hashtagCharLimit = 78
)

// Prompts holds the instruction templates. Zero values fall back to the
// compiled-in defaults.
type Prompts struct {
	Caption  string // fmt template: brand handle, brief
	Hashtags string // fmt template: brand niche, brief
	System   string // system prompt for conversational replies
}

// Client wraps the OpenAI API.
type Client struct {
	client  *gopenai.Client
	model   string
	handle  string
	niche   string
	prompts Prompts
}

// NewClient creates a new OpenAI client for the given brand.
func NewClient(apiKey, model, brandHandle, brandNiche string, prompts Prompts) *Client {
	if model == "" {
		model = defaultModel
	}
	if prompts.Caption == "" {
		prompts.Caption = DefaultCaptionPrompt
	}
	if prompts.Hashtags == "" {
		prompts.Hashtags = DefaultHashtagPrompt
	}
	if prompts.System == "" {
		prompts.System = DefaultSystemPrompt
	}
	return &Client{
		client:  gopenai.NewClient(apiKey),
		model:   model,
		handle:  brandHandle,
		niche:   brandNiche,
		prompts: prompts,
	}
}

// DefaultCaptionPrompt instructs the model to answer with the caption only.
const DefaultCaptionPrompt = `Generate a compelling post caption (max %d characters) for this content.

Brand: %s

User request: %s

Requirements:
- Professional and engaging
- Maximum %d characters (leave room for hashtags)
- Relevant to the content
- Call-to-action if appropriate

Respond with ONLY the caption text, nothing else.`

// DefaultHashtagPrompt instructs the model to answer with hashtags only.
const DefaultHashtagPrompt = `Generate 3-5 relevant hashtags for a %s brand.

Context: %s

Requirements:
- Popular and relevant hashtags
- Mix of broad and specific
- No more than 5 hashtags
- Format: #hashtag1 #hashtag2 #hashtag3

Respond with ONLY the hashtags, space-separated.`

// DefaultSystemPrompt frames the assistant as a brand strategist.
const DefaultSystemPrompt = `You are a personal marketing strategist and brand assistant for %s, a %s brand.

Your role: provide actionable, data-driven marketing insight and create
ready-to-use social content for this brand.

Response style:
- Professional yet conversational
- Concise but comprehensive, bullet points for clarity
- Always suggest specific next steps`

func (c *Client) chat(ctx context.Context, messages []gopenai.ChatCompletionMessage, temperature float32, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices", domain.ErrGenerationFailed)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateCaption produces a caption of at most 200 characters.
func (c *Client) GenerateCaption(ctx context.Context, brief string) (string, error) {
	prompt := fmt.Sprintf(c.prompts.Caption, captionCharLimit, c.handle, brief, captionCharLimit)

	caption, err := c.chat(ctx, []gopenai.ChatCompletionMessage{
		{Role: gopenai.ChatMessageRoleUser, Content: prompt},
	}, 0.8, 60)
	if err != nil {
		return "", err
	}

	caption = strings.Trim(caption, `"'`)
	if runes := []rune(caption); len(runes) > captionCharLimit {
		caption = string(runes[:captionCharLimit])
	}
	return caption, nil
}

// GenerateHashtags produces a space-separated hashtag string.
func (c *Client) GenerateHashtags(ctx context.Context, brief string) (string, error) {
	if brief == "" {
		brief = "General post"
	}
	prompt := fmt.Sprintf(c.prompts.Hashtags, c.niche, brief)

	hashtags, err := c.chat(ctx, []gopenai.ChatCompletionMessage{
		{Role: gopenai.ChatMessageRoleUser, Content: prompt},
	}, 0.7, 60)
	if err != nil {
		return "", err
	}
	return trimHashtags(hashtags), nil
}

// trimHashtags caps the hashtag string at hashtagCharLimit, dropping whole
// trailing hashtags rather than cutting one mid-word.
func trimHashtags(s string) string {
	runes := []rune(s)
	if len(runes) <= hashtagCharLimit {
		return s
	}
	cut := string(runes[:hashtagCharLimit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// Reply produces a conversational answer from the system prompt and history.
func (c *Client) Reply(ctx context.Context, systemPrompt string, history []domain.Message) (string, error) {
	if systemPrompt == "" {
		systemPrompt = c.SystemPrompt()
	}

	messages := make([]gopenai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, gopenai.ChatCompletionMessage{
		Role:    gopenai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		role := gopenai.ChatMessageRoleUser
		if msg.Role == domain.RoleAssistant {
			role = gopenai.ChatMessageRoleAssistant
		}
		messages = append(messages, gopenai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	return c.chat(ctx, messages, 0.7, 1000)
}

// SystemPrompt renders the configured system prompt for the brand. Custom
// prompts without template verbs are used as-is.
func (c *Client) SystemPrompt() string {
	if strings.Count(c.prompts.System, "%s") != 2 {
		return c.prompts.System
	}
	return fmt.Sprintf(c.prompts.System, c.handle, c.niche)
}

// GenerateImage renders an image for the prompt and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	enhanced := prompt + ". High quality, professional social media post design."
	resp, err := c.client.CreateImage(ctx, gopenai.ImageRequest{
		Model:   gopenai.CreateImageModelDallE3,
		Prompt:  enhanced,
		N:       1,
		Size:    gopenai.CreateImageSize1024x1024,
		Quality: gopenai.CreateImageQualityStandard,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no image returned", domain.ErrGenerationFailed)
	}
	return resp.Data[0].URL, nil
}
