package config

const (
	// MaxNoteTitleLength is the maximum length for note titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxNoteTitleLength = 255

	// MaxNoteContentLength is the maximum length for note content,
	// including any inline media markup assembled client-side.
	MaxNoteContentLength = 100_000

	// MaxAssistContentLength caps the content sent to the AI helpers.
	// Longer notes are rejected rather than truncated.
	MaxAssistContentLength = 20_000

	// DraftTitlePlaceholder is stored for new drafts saved without a
	// title so lists never render an empty heading.
	DraftTitlePlaceholder = "Untitled draft"
)
