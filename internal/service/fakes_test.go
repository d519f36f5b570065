package service

import (
	"context"
	"fmt"
	"time"

	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
)

// fakeTimelineRepo is an in-memory TimelineRepository with failure
// injection.
type fakeTimelineRepo struct {
	timelines []models.Timeline
	failWith  error
	listCalls int
}

func (r *fakeTimelineRepo) Create(ctx context.Context, timeline *models.Timeline) error {
	if r.failWith != nil {
		return r.failWith
	}
	next := 1
	for i := range r.timelines {
		if r.timelines[i].Number >= next {
			next = r.timelines[i].Number + 1
		}
	}
	timeline.ID = fmt.Sprintf("t%d", next)
	timeline.Number = next
	timeline.CreatedAt = time.Date(2024, 1, next, 0, 0, 0, 0, time.UTC)
	r.timelines = append(r.timelines, *timeline)
	return nil
}

func (r *fakeTimelineRepo) List(ctx context.Context) ([]models.Timeline, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.listCalls++
	out := make([]models.Timeline, len(r.timelines))
	copy(out, r.timelines)
	return out, nil
}

// fakeNoteRepo is an in-memory NoteRepository with failure injection.
type fakeNoteRepo struct {
	notes     map[string]*models.Note
	seq       int
	failWith  error
	listCalls int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*models.Note)}
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.seq++
	note.ID = fmt.Sprintf("n%d", r.seq)
	note.CreatedAt = time.Date(2024, 2, r.seq, 0, 0, 0, 0, time.UTC)
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNoteRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	note, ok := r.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	copied := *note
	return &copied, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *models.Note) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.notes[note.ID]; !ok {
		return fmt.Errorf("note %s: %w", note.ID, domain.ErrNotFound)
	}
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *fakeNoteRepo) List(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.listCalls++
	var out []models.Note
	for _, note := range r.notes {
		if filter.LineID != "" && note.LineID != filter.LineID {
			continue
		}
		if filter.Status != "" && note.Status != filter.Status {
			continue
		}
		out = append(out, *note)
	}
	return out, nil
}

// fakeGenerator is an in-memory ai.Generator with failure injection.
type fakeGenerator struct {
	title    string
	summary  string
	failWith error
}

func (g *fakeGenerator) GenerateTitle(ctx context.Context, content string) (string, error) {
	if g.failWith != nil {
		return "", g.failWith
	}
	return g.title, nil
}

func (g *fakeGenerator) Summarize(ctx context.Context, content string) (string, error) {
	if g.failWith != nil {
		return "", g.failWith
	}
	return g.summary, nil
}
