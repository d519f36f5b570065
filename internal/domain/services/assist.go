package services

import (
	"context"
)

// AssistService wraps the AI helpers exposed to the note dialog.
// Provider failures are reported as generic errors; the raw provider
// error is logged, never surfaced.
type AssistService interface {
	// SuggestTitle generates a short title for the given note content
	SuggestTitle(ctx context.Context, content string) (string, error)

	// SummarizeNote produces a concise summary of the given note content
	SummarizeNote(ctx context.Context, content string) (string, error)
}
