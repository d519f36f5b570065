// Package api defines the result envelopes exchanged between the
// mutation endpoints and their clients. Every mutation returns a
// structured result; nothing escapes the endpoint boundary as an
// unhandled fault, and clients always branch on Success.
package api

import (
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
)

// AddTimelineResult is the envelope for POST /api/timelines
type AddTimelineResult struct {
	Success     bool                     `json:"success"`
	NewTimeline *models.TimelineHydrated `json:"newTimeline,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// AddNoteResult is the envelope for POST /api/notes
type AddNoteResult struct {
	Success bool                 `json:"success"`
	NewNote *models.NoteHydrated `json:"newNote,omitempty"`
	Errors  domain.FieldErrors   `json:"errors,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// SaveDraftResult is the envelope for POST /api/drafts
type SaveDraftResult struct {
	Success bool               `json:"success"`
	DraftID string             `json:"draftId,omitempty"`
	Errors  domain.FieldErrors `json:"errors,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// TitleResult is the envelope for POST /api/assist/title
type TitleResult struct {
	Title string `json:"title,omitempty"`
	Error string `json:"error,omitempty"`
}

// SummaryResult is the envelope for POST /api/assist/summary
type SummaryResult struct {
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AssistRequest is the input for both assist endpoints
type AssistRequest struct {
	Content string `json:"content"`
}
