package models

import (
	"time"
)

// Timeline is a numbered lane of notes. Number is server-assigned,
// unique, and strictly increasing in creation order.
type Timeline struct {
	ID        string    `json:"id" db:"id"`
	Number    int       `json:"number" db:"number"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TimelineHydrated is the transport form of a timeline with the
// creation timestamp serialized as an RFC 3339 string.
type TimelineHydrated struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	CreatedAt string `json:"createdAt"`
}

// Hydrate converts a timeline into its transport form.
func (t *Timeline) Hydrate() TimelineHydrated {
	return TimelineHydrated{
		ID:        t.ID,
		Number:    t.Number,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
