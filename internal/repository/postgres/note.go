package postgres

import (
	"context"
	"fmt"

	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
)

// PostgresNoteRepository implements the NoteRepository interface
type PostgresNoteRepository struct {
	config *RepositoryConfig
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(config *RepositoryConfig) repositories.NoteRepository {
	return &PostgresNoteRepository{config: config}
}

// Create inserts a new note. The referenced timeline must exist; a
// foreign key violation is reported as not-found on the timeline.
func (r *PostgresNoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (line_id, title, content, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`, r.config.Tables.Notes)

	executor := GetExecutor(ctx, r.config.Pool)
	err := executor.QueryRow(ctx, query,
		note.LineID,
		note.Title,
		note.Content,
		note.Status,
	).Scan(&note.ID, &note.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("timeline %s: %w", note.LineID, domain.ErrNotFound)
		}
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

// GetByID retrieves a note by ID
func (r *PostgresNoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := fmt.Sprintf(`
		SELECT id, line_id, title, content, status, created_at
		FROM %s
		WHERE id = $1
	`, r.config.Tables.Notes)

	var note models.Note
	executor := GetExecutor(ctx, r.config.Pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&note.ID,
		&note.LineID,
		&note.Title,
		&note.Content,
		&note.Status,
		&note.CreatedAt,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &note, nil
}

// Update overwrites a note's fields in place. The promotion path also
// reassigns created_at, so the timestamp is written verbatim.
func (r *PostgresNoteRepository) Update(ctx context.Context, note *models.Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET line_id = $1, title = $2, content = $3, status = $4, created_at = $5
		WHERE id = $6
	`, r.config.Tables.Notes)

	executor := GetExecutor(ctx, r.config.Pool)
	result, err := executor.Exec(ctx, query,
		note.LineID,
		note.Title,
		note.Content,
		note.Status,
		note.CreatedAt,
		note.ID,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("timeline %s: %w", note.LineID, domain.ErrNotFound)
		}
		return fmt.Errorf("update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", note.ID, domain.ErrNotFound)
	}

	return nil
}

// List retrieves notes matching the filter, ordered by created_at ASC
func (r *PostgresNoteRepository) List(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error) {
	query := fmt.Sprintf(`
		SELECT id, line_id, title, content, status, created_at
		FROM %s
	`, r.config.Tables.Notes)

	var args []interface{}
	var conditions []string
	if filter.LineID != "" {
		args = append(args, filter.LineID)
		conditions = append(conditions, fmt.Sprintf("line_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at ASC"

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.LineID,
			&note.Title,
			&note.Content,
			&note.Status,
			&note.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}
