// Package tokenizer provides real token counts for input statistics.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE used when none is configured.
const DefaultEncoding = "cl100k_base"

// Tiktoken counts tokens with an OpenAI BPE encoding. Counts are an
// approximation for non-OpenAI models.
type Tiktoken struct {
	name string
	enc  *tiktoken.Tiktoken
}

// NewTiktoken loads the named encoding. The first load may download the
// vocabulary unless TIKTOKEN_CACHE_DIR already holds it.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &Tiktoken{name: "tiktoken/" + encoding, enc: enc}, nil
}

// Name identifies the tokenizer in Stats.
func (t *Tiktoken) Name() string {
	return t.name
}

// Count returns the number of tokens in text.
func (t *Tiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}
