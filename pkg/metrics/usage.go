package metrics

import "fmt"

// TokenUsage captures LLM token counts used to satisfy a request.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// Caption renders the usage line shown under a summary.
func (u TokenUsage) Caption() string {
	return fmt.Sprintf("Tokens → prompt: %d, completion: %d, total: %d", u.PromptTokens, u.CompletionTokens, u.TotalTokens)
}

// UsageOrNil returns nil when the endpoint reported no usage metadata.
func UsageOrNil(u TokenUsage) *TokenUsage {
	if u.IsZero() {
		return nil
	}
	return &u
}
