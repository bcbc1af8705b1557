package usecase

import "strings"

// postingPhrases is the fixed trigger-phrase table for publish intent.
var postingPhrases = []string{
	"post this", "upload this", "tweet this", "publish this",
	"post it", "upload it", "tweet it", "share this",
	"post on", "upload on", "tweet on", "post to",
	"post the", "upload the", "automate", "schedule",
}

// DetectPostingIntent reports whether a chat message is a publish request.
// It is a pure, case-insensitive substring test, and requires an attached
// image: conversational text containing a trigger phrase with nothing to
// publish is never a publish turn.
func DetectPostingIntent(messageText string, hasImage bool) bool {
	if !hasImage {
		return false
	}
	lower := strings.ToLower(messageText)
	for _, phrase := range postingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Action types for non-publish turns.
const (
	ActionGeneralChat        = "general_chat"
	ActionGenerateImage      = "generate_image"
	ActionGenerateReport     = "generate_report"
	ActionGenerateContent    = "generate_content"
	ActionCompetitorAnalysis = "competitor_analysis"
	ActionPredictiveAnalysis = "predictive_analysis"
	ActionAudienceInsights   = "audience_insights"
	ActionCampaignCreation   = "campaign_creation"
	ActionPostToProvider     = "post_to_provider"
)

var imagePhrases = []string{
	"create a image", "create an image", "generate a image", "generate an image",
	"generate image", "make image", "make a image", "make an image",
	"create a photo", "create photo", "generate a photo", "generate photo", "make photo",
	"design a post", "design post", "create visual", "generate visual",
	"make a post photo", "create post image", "image of", "photo of",
	"image about", "photo about", "picture of", "picture about",
	"graphic about", "graphic of", "design about",
}

// DetectActionType classifies a non-publish turn into an action category.
func DetectActionType(messageText string) string {
	lower := strings.ToLower(messageText)

	containsAny := func(phrases ...string) bool {
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny(imagePhrases...):
		return ActionGenerateImage
	case containsAny("generate report", "send report", "create report", "email report"):
		return ActionGenerateReport
	case containsAny("generate post", "create caption", "write post", "generate content"):
		return ActionGenerateContent
	case containsAny("competitor", "competition", "rival"):
		return ActionCompetitorAnalysis
	case containsAny("predict", "forecast", "what if", "scenario"):
		return ActionPredictiveAnalysis
	case containsAny("persona", "audience segment", "who is"):
		return ActionAudienceInsights
	case containsAny("campaign", "strategy", "plan"):
		return ActionCampaignCreation
	default:
		return ActionGeneralChat
	}
}
