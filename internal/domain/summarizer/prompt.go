package summarizer

import (
	"fmt"
	"strings"
)

const (
	framingInstruction = "You are a helpful summarization assistant."
	systemMessage      = "You summarize text accurately and follow formatting instructions exactly."
	textLabel          = "Text to summarize:"

	// NoResponsePlaceholder stands in for an empty completion.
	NoResponsePlaceholder = "[No response]"

	// DefaultMaxInputChars keeps requests inside the model context window.
	DefaultMaxInputChars = 8000
)

// Truncate keeps the first maxChars characters of text and reports whether
// anything was dropped. It is a plain character cap: it may cut mid-word.
func Truncate(text string, maxChars int) (string, bool) {
	if maxChars <= 0 || len(text) <= maxChars {
		return text, false
	}
	count := 0
	for i := range text {
		if count == maxChars {
			return text[:i], true
		}
		count++
	}
	return text, false
}

// TruncationWarning is the notice attached to a response whose input was cut.
func TruncationWarning(maxChars int) string {
	return fmt.Sprintf("Input truncated to %d characters to fit model context.", maxChars)
}

// BuildPrompt assembles the instruction document sent as the user turn.
func BuildPrompt(in Instructions, text string) string {
	var b strings.Builder
	b.WriteString(framingInstruction)
	b.WriteString("\n")
	b.WriteString(in.Length)
	b.WriteString("\n")
	b.WriteString(in.Tone)
	b.WriteString("\n")
	b.WriteString(in.Format)
	b.WriteString("\n\n")
	b.WriteString(textLabel)
	b.WriteString("\n")
	b.WriteString(text)
	return strings.TrimSpace(b.String())
}

func buildMessages(prompt string) []Message {
	return []Message{
		{Role: "system", Content: systemMessage},
		{Role: "user", Content: prompt},
	}
}
