package services

import (
	"context"

	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
)

// NoteService handles note business logic
type NoteService interface {
	// AddNote publishes a note. With DraftID set, the existing draft is
	// promoted in place (same id); otherwise a new published note is
	// created.
	AddNote(ctx context.Context, req *AddNoteRequest) (*models.Note, error)

	// SaveDraft creates or updates a draft and returns its id. Title
	// and content may be empty; a placeholder title is stored for new
	// untitled drafts.
	SaveDraft(ctx context.Context, req *SaveDraftRequest) (string, error)

	// ListNotes returns notes matching the filter ordered by creation time
	ListNotes(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error)
}

// AddNoteRequest represents a note publish request
type AddNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	LineID  string `json:"lineId"`
	DraftID string `json:"draftId,omitempty"`
}

// SaveDraftRequest represents a draft save request
type SaveDraftRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	LineID  string `json:"lineId"`
	DraftID string `json:"draftId,omitempty"`
}
