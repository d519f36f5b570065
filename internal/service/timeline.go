package service

import (
	"context"
	"log/slog"

	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
	"chronoflow/internal/domain/services"
)

// timelineService implements the TimelineService interface
type timelineService struct {
	timelineRepo repositories.TimelineRepository
	board        services.BoardService
	logger       *slog.Logger
}

// NewTimelineService creates a new timeline service. board may be nil
// when no snapshot cache is in play (seeding, tests).
func NewTimelineService(
	timelineRepo repositories.TimelineRepository,
	board services.BoardService,
	logger *slog.Logger,
) services.TimelineService {
	return &timelineService{
		timelineRepo: timelineRepo,
		board:        board,
		logger:       logger,
	}
}

// AddTimeline creates a new timeline with the next lane number.
//
// Number allocation is delegated to the repository, which performs it
// atomically; two concurrent calls never observe the same number.
func (s *timelineService) AddTimeline(ctx context.Context) (*models.Timeline, error) {
	timeline := &models.Timeline{}
	if err := s.timelineRepo.Create(ctx, timeline); err != nil {
		return nil, err
	}

	if s.board != nil {
		s.board.Invalidate()
	}

	s.logger.Info("timeline created",
		"id", timeline.ID,
		"number", timeline.Number,
	)

	return timeline, nil
}

// ListTimelines retrieves all timelines ordered by number
func (s *timelineService) ListTimelines(ctx context.Context) ([]models.Timeline, error) {
	return s.timelineRepo.List(ctx)
}
