package summarizer

import (
	"context"

	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// Config configures the summarization pipeline.
type Config struct {
	Model              string
	DefaultTemperature float32

	// MaxInputChars caps the text placed in the prompt. Zero disables the cap.
	MaxInputChars int
}

// Request represents the incoming summarization payload.
type Request struct {
	Text        string   `json:"text" form:"text"`
	Length      string   `json:"length,omitempty" form:"length"`
	Tone        string   `json:"tone,omitempty" form:"tone"`
	Format      string   `json:"format,omitempty" form:"format"`
	Temperature *float32 `json:"temperature,omitempty" form:"temperature"`

	// RequestID correlates logs; generated when empty.
	RequestID string `json:"-" form:"-"`
}

// Selection is the resolved set of presentational options for one submission.
type Selection struct {
	Length      Length  `json:"length"`
	Tone        Tone    `json:"tone"`
	Format      Format  `json:"format"`
	Temperature float32 `json:"temperature"`
}

// Response is returned by Summarize.
type Response struct {
	RequestID  string              `json:"requestId"`
	Summary    string              `json:"summary"`
	Selection  Selection           `json:"selection"`
	Truncated  bool                `json:"truncated"`
	Warnings   []string            `json:"warnings,omitempty"`
	InputStats textstats.Stats     `json:"inputStats"`
	TokenUsage *metrics.TokenUsage `json:"tokenUsage,omitempty"`
	DurationMs int64               `json:"durationMs"`
}

// Options describes the choices a form can offer.
type Options struct {
	Lengths       []Length  `json:"lengths"`
	Tones         []Tone    `json:"tones"`
	Formats       []Format  `json:"formats"`
	Defaults      Selection `json:"defaults"`
	Temperature   Range     `json:"temperature"`
	Model         string    `json:"model"`
	MaxInputChars int       `json:"maxInputChars"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// Message is one chat turn sent to the inference endpoint.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest is a single non-streamed chat completion call.
type CompletionRequest struct {
	Model       string
	Temperature float32
	Messages    []Message
}

// Completion is the generated text plus optional usage counters.
type Completion struct {
	Content string
	Usage   *metrics.TokenUsage
}

// Completer is the narrow seam to the remote model.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// Recorder receives pipeline outcomes for metrics.
type Recorder interface {
	ObserveSummary(length, format string, truncated bool, usage *metrics.TokenUsage)
	ObserveSummaryFailure(length, format string)
}
