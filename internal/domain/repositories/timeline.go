package repositories

import (
	"context"

	"chronoflow/internal/domain/models"
)

// TimelineRepository handles timeline persistence.
//
// Timelines are append-only in this design: they are never updated or
// deleted once created.
type TimelineRepository interface {
	// Create inserts a new timeline, allocating the next lane number
	// atomically, and fills in the server-assigned id, number and
	// creation timestamp.
	Create(ctx context.Context, timeline *models.Timeline) error

	// List returns all timelines ordered by number ascending.
	List(ctx context.Context) ([]models.Timeline, error)
}
