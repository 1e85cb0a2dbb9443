package textstats

import (
	"strings"
	"unicode/utf8"
)

// wordsPerToken is the rule of thumb behind EstimatedTokens (~0.75 words per token).
const wordsPerToken = 0.75

// Stats describes an input text. All values are advisory and never drive truncation.
type Stats struct {
	Characters      int    `json:"characters"`
	Words           int    `json:"words"`
	EstimatedTokens int    `json:"estimatedTokens"`
	Tokens          *int   `json:"tokens,omitempty"`
	Tokenizer       string `json:"tokenizer,omitempty"`
}

// TokenCounter counts tokens with a real tokenizer.
type TokenCounter interface {
	Name() string
	Count(text string) int
}

// Estimator computes Stats, optionally enriched by a TokenCounter.
type Estimator struct {
	counter TokenCounter
}

// NewEstimator builds an Estimator. counter may be nil.
func NewEstimator(counter TokenCounter) *Estimator {
	return &Estimator{counter: counter}
}

// Estimate returns zero Stats for blank text.
func (e *Estimator) Estimate(text string) Stats {
	if strings.TrimSpace(text) == "" {
		return Stats{}
	}
	words := WordCount(text)
	stats := Stats{
		Characters:      utf8.RuneCountInString(text),
		Words:           words,
		EstimatedTokens: EstimateTokens(words),
	}
	if e != nil && e.counter != nil {
		n := e.counter.Count(text)
		stats.Tokens = &n
		stats.Tokenizer = e.counter.Name()
	}
	return stats
}

// WordCount counts whitespace delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// EstimateTokens converts a word count into a rough token count.
func EstimateTokens(words int) int {
	if words <= 0 {
		return 0
	}
	return int(float64(words) / wordsPerToken)
}
