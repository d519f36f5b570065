package models

import (
	"time"
)

// NoteStatus is the lifecycle state of a note.
type NoteStatus string

const (
	NoteStatusDraft     NoteStatus = "draft"
	NoteStatusPublished NoteStatus = "published"
)

// Valid reports whether s is a known status.
func (s NoteStatus) Valid() bool {
	return s == NoteStatusDraft || s == NoteStatusPublished
}

// Note is a user-authored text/media entry attached to exactly one
// timeline. Content may embed inline HTML assembled client-side and is
// stored opaquely.
type Note struct {
	ID        string     `json:"id" db:"id"`
	LineID    string     `json:"line_id" db:"line_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Status    NoteStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NoteHydrated is the transport form of a note.
type NoteHydrated struct {
	ID        string     `json:"id"`
	LineID    string     `json:"lineId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Status    NoteStatus `json:"status"`
	CreatedAt string     `json:"createdAt"`
}

// Hydrate converts a note into its transport form.
func (n *Note) Hydrate() NoteHydrated {
	return NoteHydrated{
		ID:        n.ID,
		LineID:    n.LineID,
		Title:     n.Title,
		Content:   n.Content,
		Status:    n.Status,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
