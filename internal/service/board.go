package service

import (
	"context"
	"log/slog"
	"sync"

	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
	"chronoflow/internal/domain/services"
)

// boardService implements the BoardService interface with a cached
// snapshot. Mutation services call Invalidate after every successful
// write, so a page load after a write always re-reads from storage.
type boardService struct {
	timelineRepo repositories.TimelineRepository
	noteRepo     repositories.NoteRepository
	logger       *slog.Logger

	mu     sync.RWMutex
	cached *models.BoardSnapshot
}

// NewBoardService creates a new board service
func NewBoardService(
	timelineRepo repositories.TimelineRepository,
	noteRepo repositories.NoteRepository,
	logger *slog.Logger,
) services.BoardService {
	return &boardService{
		timelineRepo: timelineRepo,
		noteRepo:     noteRepo,
		logger:       logger,
	}
}

// Snapshot returns the current hydrated board state: all timelines by
// number and all published notes by creation time. Drafts are excluded
// from the main view.
func (s *boardService) Snapshot(ctx context.Context) (*models.BoardSnapshot, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	timelines, err := s.timelineRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx, repositories.NoteFilter{
		Status: models.NoteStatusPublished,
	})
	if err != nil {
		return nil, err
	}

	snapshot := &models.BoardSnapshot{
		Timelines: make([]models.TimelineHydrated, 0, len(timelines)),
		Notes:     make([]models.NoteHydrated, 0, len(notes)),
	}
	for i := range timelines {
		snapshot.Timelines = append(snapshot.Timelines, timelines[i].Hydrate())
	}
	for i := range notes {
		snapshot.Notes = append(snapshot.Notes, notes[i].Hydrate())
	}

	s.mu.Lock()
	s.cached = snapshot
	s.mu.Unlock()

	s.logger.Debug("board snapshot rebuilt",
		"timelines", len(snapshot.Timelines),
		"notes", len(snapshot.Notes),
	)

	return snapshot, nil
}

// Invalidate discards the cached snapshot
func (s *boardService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
