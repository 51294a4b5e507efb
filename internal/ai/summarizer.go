package ai

import (
	"context"
	"strings"
)

// Summarizer turns one date's commit messages into a prose work summary
type Summarizer interface {
	// Summarize generates a summary for the messages of a single date.
	// Messages arrive in log order (newest first).
	Summarize(ctx context.Context, date string, messages []string) (string, error)
}

// NoopSummarizer provides a fallback implementation that returns the raw
// messages without remote processing
type NoopSummarizer struct{}

// NewNoopSummarizer creates a new no-op summarizer
func NewNoopSummarizer() *NoopSummarizer {
	return &NoopSummarizer{}
}

// Summarize returns the messages newline-joined and trimmed
func (n *NoopSummarizer) Summarize(_ context.Context, _ string, messages []string) (string, error) {
	return strings.TrimSpace(strings.Join(messages, "\n")), nil
}
