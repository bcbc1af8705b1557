package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixaro/brand-social-bridge/internal/biz/domain"
	"github.com/pixaro/brand-social-bridge/internal/biz/repo"
)

const (
	// PostCharLimit is the provider's hard ceiling for combined post text.
	PostCharLimit = 280

	captionHashtagSeparator = "\n\n"

	// Static fallbacks when the generation provider is unavailable.
	// Publishing is never blocked on generation.
	FallbackCaption  = "Check out this content!"
	FallbackHashtags = "#SocialMedia #Marketing #Brand"
)

// ComposerUsecase builds post text from a short brief via the
// text-generation provider, with deterministic fallbacks.
type ComposerUsecase struct {
	generator repo.GeneratorRepo
}

// NewComposerUsecase creates a new composer usecase. generator may be nil,
// in which case every composition uses the fallbacks.
func NewComposerUsecase(generator repo.GeneratorRepo) *ComposerUsecase {
	return &ComposerUsecase{generator: generator}
}

// Compose produces caption + hashtags for the brief. The two generation
// calls are independent and issued concurrently. Generation failure or empty
// output degrades to the static fallback; Compose itself never fails.
func (uc *ComposerUsecase) Compose(ctx context.Context, brief string) domain.PublishText {
	captionCh := make(chan string, 1)
	hashtagsCh := make(chan string, 1)

	go func() {
		captionCh <- uc.caption(ctx, brief)
	}()
	go func() {
		hashtagsCh <- uc.hashtags(ctx, brief)
	}()

	caption := <-captionCh
	hashtags := <-hashtagsCh

	return domain.PublishText{
		Caption:  caption,
		Hashtags: hashtags,
		Full:     CombineWithinLimit(caption, hashtags),
	}
}

func (uc *ComposerUsecase) caption(ctx context.Context, brief string) string {
	if uc.generator == nil {
		return FallbackCaption
	}
	caption, err := uc.generator.GenerateCaption(ctx, brief)
	if err != nil || strings.TrimSpace(caption) == "" {
		if err != nil {
			fmt.Printf("[Composer] Caption generation failed, using fallback: %v\n", err)
		}
		return FallbackCaption
	}
	return strings.TrimSpace(caption)
}

func (uc *ComposerUsecase) hashtags(ctx context.Context, brief string) string {
	if uc.generator == nil {
		return FallbackHashtags
	}
	hashtags, err := uc.generator.GenerateHashtags(ctx, brief)
	if err != nil || strings.TrimSpace(hashtags) == "" {
		if err != nil {
			fmt.Printf("[Composer] Hashtag generation failed, using fallback: %v\n", err)
		}
		return FallbackHashtags
	}
	return strings.TrimSpace(hashtags)
}

// CombineWithinLimit joins caption and hashtags, truncating the caption
// (never the hashtags) so the combination stays within PostCharLimit.
func CombineWithinLimit(caption, hashtags string) string {
	if hashtags == "" {
		return truncateRunes(caption, PostCharLimit)
	}

	full := caption + captionHashtagSeparator + hashtags
	if len([]rune(full)) <= PostCharLimit {
		return full
	}

	budget := PostCharLimit - len([]rune(captionHashtagSeparator)) - len([]rune(hashtags))
	if budget < 0 {
		// Hashtags alone exceed the ceiling; keep what fits of them.
		return truncateRunes(hashtags, PostCharLimit)
	}
	return truncateRunes(caption, budget) + captionHashtagSeparator + hashtags
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
