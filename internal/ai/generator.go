// Package ai provides the text-generation backends behind the note
// assistant: a real Anthropic-backed generator and a lorem generator
// for dev and test environments.
package ai

import (
	"context"
)

// Generator produces assistant text for note content.
type Generator interface {
	// GenerateTitle returns a short title (at most ten words) for the
	// given note content.
	GenerateTitle(ctx context.Context, content string) (string, error)

	// Summarize returns a concise summary of the given note content.
	Summarize(ctx context.Context, content string) (string, error)
}
