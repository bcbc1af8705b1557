package domain

// PublishText is composed post text: caption, hashtags, and their
// combination, guaranteed to fit the provider's character ceiling.
type PublishText struct {
	Caption  string
	Hashtags string
	Full     string
}

// PublishRequest is the transient payload of one publish attempt.
type PublishRequest struct {
	Text     string
	ImageRef string
}

// PostResult identifies a successfully published post.
type PostResult struct {
	PostID  string
	PostURL string
}

// ChatResult is the orchestrator's answer for one chat turn.
type ChatResult struct {
	Reply      string
	ActionType string
	Published  bool
	PostURL    string
	ImageURL   string
}
