package repositories

import (
	"context"

	"chronoflow/internal/domain/models"
)

// NoteFilter narrows a note listing. Zero values mean "no filter".
type NoteFilter struct {
	LineID string
	Status models.NoteStatus
}

// NoteRepository handles note persistence.
//
// Notes are never deleted by this core; a draft is promoted in place,
// keeping its id.
type NoteRepository interface {
	// Create inserts a new note and fills in the server-assigned id
	// and creation timestamp.
	Create(ctx context.Context, note *models.Note) error

	// GetByID retrieves a note by id.
	GetByID(ctx context.Context, id string) (*models.Note, error)

	// Update overwrites a note's title, content, line, status and
	// creation timestamp in place.
	Update(ctx context.Context, note *models.Note) error

	// List returns notes matching the filter ordered by creation time
	// ascending.
	List(ctx context.Context, filter NoteFilter) ([]models.Note, error)
}
