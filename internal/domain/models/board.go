package models

// BoardSnapshot is the full page-load payload: every timeline ordered
// by number and every published note ordered by creation time.
type BoardSnapshot struct {
	Timelines []TimelineHydrated `json:"timelines"`
	Notes     []NoteHydrated     `json:"notes"`
}
