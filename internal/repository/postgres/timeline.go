package postgres

import (
	"context"
	"fmt"

	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
)

// maxNumberRetries bounds retries of the lane-number allocation when a
// concurrent creation claims the same number first.
const maxNumberRetries = 3

// PostgresTimelineRepository implements the TimelineRepository interface
type PostgresTimelineRepository struct {
	config *RepositoryConfig
}

// NewTimelineRepository creates a new timeline repository
func NewTimelineRepository(config *RepositoryConfig) repositories.TimelineRepository {
	return &PostgresTimelineRepository{config: config}
}

// Create inserts a new timeline with the next lane number.
//
// The number is allocated by the INSERT itself (MAX+1 subselect), and a
// UNIQUE constraint on number turns a lost race into a retryable
// unique-violation instead of a silent duplicate.
func (r *PostgresTimelineRepository) Create(ctx context.Context, timeline *models.Timeline) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (number, created_at)
		SELECT COALESCE(MAX(number), 0) + 1, NOW()
		FROM %s
		RETURNING id, number, created_at
	`, r.config.Tables.Timelines, r.config.Tables.Timelines)

	var lastErr error
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		executor := GetExecutor(ctx, r.config.Pool)
		err := executor.QueryRow(ctx, query).Scan(
			&timeline.ID,
			&timeline.Number,
			&timeline.CreatedAt,
		)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("create timeline: %w", err)
		}
		lastErr = err
		r.config.Logger.Debug("timeline number collision, retrying",
			"attempt", attempt+1,
		)
	}

	return fmt.Errorf("allocate timeline number: %w: %v", domain.ErrConflict, lastErr)
}

// List retrieves all timelines ordered by number ascending
func (r *PostgresTimelineRepository) List(ctx context.Context) ([]models.Timeline, error) {
	query := fmt.Sprintf(`
		SELECT id, number, created_at
		FROM %s
		ORDER BY number ASC
	`, r.config.Tables.Timelines)

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list timelines: %w", err)
	}
	defer rows.Close()

	var timelines []models.Timeline
	for rows.Next() {
		var timeline models.Timeline
		if err := rows.Scan(&timeline.ID, &timeline.Number, &timeline.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan timeline: %w", err)
		}
		timelines = append(timelines, timeline)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timelines: %w", err)
	}

	if timelines == nil {
		timelines = []models.Timeline{}
	}

	return timelines, nil
}
