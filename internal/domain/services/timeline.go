package services

import (
	"context"

	"chronoflow/internal/domain/models"
)

// TimelineService handles timeline business logic
type TimelineService interface {
	// AddTimeline creates a new timeline with the next lane number and
	// returns it fully hydrated (server-resolved timestamp).
	AddTimeline(ctx context.Context) (*models.Timeline, error)

	// ListTimelines returns all timelines ordered by number
	ListTimelines(ctx context.Context) ([]models.Timeline, error)
}
