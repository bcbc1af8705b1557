package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

// DefaultHistoryLimit is how many recent history messages feed a reply when
// no limit is configured.
const DefaultHistoryLimit = 15

// ChatUsecase orchestrates one chat turn: publish turns run through the
// composer and publish executor; everything else is handled conversationally.
type ChatUsecase struct {
	composer     *ComposerUsecase
	publisher    *PublishUsecase
	generator    repo.GeneratorRepo
	history      repo.HistoryRepo
	historyLimit int
}

// NewChatUsecase creates a new chat usecase. generator and history may be
// nil; the usecase degrades instead of failing. A non-positive historyLimit
// falls back to DefaultHistoryLimit.
func NewChatUsecase(
	composer *ComposerUsecase,
	publisher *PublishUsecase,
	generator repo.GeneratorRepo,
	history repo.HistoryRepo,
	historyLimit int,
) *ChatUsecase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ChatUsecase{
		composer:     composer,
		publisher:    publisher,
		generator:    generator,
		history:      history,
		historyLimit: historyLimit,
	}
}

// HandleMessage processes one chat turn. A turn is a publish turn only when
// an image is attached and the message expresses posting intent; otherwise
// it is answered conversationally.
func (uc *ChatUsecase) HandleMessage(ctx context.Context, sessionID, text, imageRef string) (*domain.ChatResult, error) {
	uc.remember(ctx, sessionID, domain.RoleUser, text)

	var result *domain.ChatResult
	if imageRef != "" && DetectPostingIntent(text, true) {
		result = uc.handlePublishTurn(ctx, sessionID, text, imageRef)
	} else {
		result = uc.handleConversationTurn(ctx, sessionID, text)
	}

	uc.remember(ctx, sessionID, domain.RoleAssistant, result.Reply)
	return result, nil
}

func (uc *ChatUsecase) handlePublishTurn(ctx context.Context, sessionID, text, imageRef string) *domain.ChatResult {
	composed := uc.composer.Compose(ctx, text)

	post, err := uc.publisher.Publish(ctx, sessionID, composed.Full, imageRef)
	if err != nil {
		fmt.Printf("[Chat] Publish failed for session %s: %v\n", sessionID, err)
		return &domain.ChatResult{
			Reply:      CorrectiveMessage(err),
			ActionType: ActionPostToProvider,
		}
	}

	reply := fmt.Sprintf("Posted to your account!\n\nCaption: %s\n\nHashtags: %s\n\n%s",
		composed.Caption, composed.Hashtags, post.PostURL)
	return &domain.ChatResult{
		Reply:      reply,
		ActionType: ActionPostToProvider,
		Published:  true,
		PostURL:    post.PostURL,
	}
}

func (uc *ChatUsecase) handleConversationTurn(ctx context.Context, sessionID, text string) *domain.ChatResult {
	actionType := DetectActionType(text)

	if actionType == ActionGenerateImage && uc.generator != nil {
		return uc.handleImageTurn(ctx, text)
	}

	if uc.generator == nil {
		return &domain.ChatResult{
			Reply:      "I can help you compose and publish posts. Attach an image and tell me to post it.",
			ActionType: actionType,
		}
	}

	history := uc.recent(ctx, sessionID)
	reply, err := uc.generator.Reply(ctx, "", history)
	if err != nil {
		fmt.Printf("[Chat] Reply generation failed: %v\n", err)
		return &domain.ChatResult{
			Reply:      "I ran into a problem answering that. Please try again in a moment.",
			ActionType: actionType,
		}
	}

	return &domain.ChatResult{Reply: reply, ActionType: actionType}
}

func (uc *ChatUsecase) handleImageTurn(ctx context.Context, text string) *domain.ChatResult {
	imageURL, err := uc.generator.GenerateImage(ctx, text)
	if err != nil {
		return &domain.ChatResult{
			Reply:      imageErrorReply(err),
			ActionType: ActionGenerateImage,
		}
	}

	return &domain.ChatResult{
		Reply:      "I've generated an image for you. Would you like me to create another variation or post it?",
		ActionType: ActionGenerateImage,
		ImageURL:   imageURL,
	}
}

// remember appends to history best-effort; a history failure never blocks
// the turn.
func (uc *ChatUsecase) remember(ctx context.Context, sessionID, role, content string) {
	if uc.history == nil || content == "" {
		return
	}
	err := uc.history.Append(ctx, &domain.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		fmt.Printf("[Chat] Failed to store history: %v\n", err)
	}
}

func (uc *ChatUsecase) recent(ctx context.Context, sessionID string) []domain.Message {
	if uc.history == nil {
		return nil
	}
	history, err := uc.history.Recent(ctx, sessionID, uc.historyLimit)
	if err != nil {
		fmt.Printf("[Chat] Failed to load history: %v\n", err)
		return nil
	}
	return history
}

// CorrectiveMessage maps a typed error to a short user-facing explanation
// with the precise corrective action.
func CorrectiveMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return "Your account isn't connected yet. Connect it first, then ask me to post again."
	case errors.Is(err, domain.ErrMediaUploadFailed):
		return "I couldn't upload the image, so nothing was posted. Please re-upload the image and try again."
	case errors.Is(err, domain.ErrPublishFailed):
		return fmt.Sprintf("The post was rejected: %s. Adjust the content or try again later.", providerDetail(err))
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "The platform can't be reached right now. Please try again in a few minutes."
	case errors.Is(err, domain.ErrAuthorizationDenied):
		return "Authorization was denied. Restart the connect flow to link your account."
	case errors.Is(err, domain.ErrInvalidHandshakeState):
		return "This connect link is no longer valid. Restart the connect flow from the beginning."
	default:
		return fmt.Sprintf("Something went wrong: %v. Please try again.", err)
	}
}

// providerDetail strips the sentinel prefix, keeping the provider's verbatim
// error text.
func providerDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

func imageErrorReply(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "billing") || strings.Contains(msg, "quota"):
		return "Image generation quota exceeded. Please check the account's billing settings."
	case strings.Contains(msg, "content_policy") || strings.Contains(msg, "safety"):
		return "I can't generate that image due to content policy. Try describing a different scene or concept."
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "Image generation timed out. Please try again."
	case strings.Contains(msg, "rate_limit"):
		return "Too many requests. Please wait a moment and try again."
	default:
		return "Sorry, I couldn't generate that image. Please try a different description."
	}
}
