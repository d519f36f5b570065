package services

import (
	"context"

	"chronoflow/internal/domain/models"
)

// BoardService serves the page-load snapshot of every timeline and
// published note. Implementations may cache the snapshot; mutation
// services invalidate it after any successful write so the next load
// reflects the new state.
type BoardService interface {
	// Snapshot returns the current hydrated board state
	Snapshot(ctx context.Context) (*models.BoardSnapshot, error)

	// Invalidate discards any cached snapshot
	Invalidate()
}
