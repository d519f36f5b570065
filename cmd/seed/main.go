package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"chronoflow/internal/config"
	"chronoflow/internal/domain/services"
	"chronoflow/internal/repository/postgres"
	"chronoflow/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// fixtures is the optional YAML seed file: lanes in order, each with
// its notes. Lane numbers are assigned by the service, so the file
// only carries order.
type fixtures struct {
	Timelines []struct {
		Notes []struct {
			Title   string `yaml:"title"`
			Content string `yaml:"content"`
			Status  string `yaml:"status"`
		} `yaml:"notes"`
	} `yaml:"timelines"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear all notes and timelines (keep schema)")
	fixturesPath := flag.String("fixtures", "", "YAML file with timelines and notes to seed")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	log.Printf("Ensuring database schema is up to date (prefix: %s)...", cfg.TablePrefix)
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("Clearing notes and timelines...")
		if err := clearAllData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("Data cleared")
		return
	}

	if *fixturesPath == "" {
		log.Println("No --fixtures file given, nothing to seed")
		return
	}

	fx, err := loadFixtures(*fixturesPath)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}

	// Create repositories and services; seeding goes through the same
	// business rules as the API (numbering, placeholder titles).
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	timelineRepo := postgres.NewTimelineRepository(repoConfig)
	noteRepo := postgres.NewNoteRepository(repoConfig)
	timelineService := service.NewTimelineService(timelineRepo, nil, logger)
	noteService := service.NewNoteService(noteRepo, nil, nil, logger)

	for i, lane := range fx.Timelines {
		timeline, err := timelineService.AddTimeline(ctx)
		if err != nil {
			log.Fatalf("Failed to create timeline %d: %v", i+1, err)
		}
		log.Printf("Created timeline %d (number %d)", i+1, timeline.Number)

		for _, n := range lane.Notes {
			if n.Status == "draft" {
				draftID, err := noteService.SaveDraft(ctx, &services.SaveDraftRequest{
					Title:   n.Title,
					Content: n.Content,
					LineID:  timeline.ID,
				})
				if err != nil {
					log.Printf("Failed to seed draft '%s': %v", n.Title, err)
					continue
				}
				log.Printf("  draft %s (%s)", n.Title, draftID)
				continue
			}

			note, err := noteService.AddNote(ctx, &services.AddNoteRequest{
				Title:   n.Title,
				Content: n.Content,
				LineID:  timeline.ID,
			})
			if err != nil {
				log.Printf("Failed to seed note '%s': %v", n.Title, err)
				continue
			}
			log.Printf("  note %s (%s)", note.Title, note.ID)
		}
	}

	log.Println("Seeding complete!")
}

// loadFixtures parses the YAML seed file
func loadFixtures(path string) (*fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fx fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fx, nil
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	if _, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\""); err != nil {
		return err
	}

	// Create timelines table
	createTimelines := `
		CREATE TABLE IF NOT EXISTS ` + tables.Timelines + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			number INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createTimelines); err != nil {
		return err
	}

	// Create notes table
	createNotes := `
		CREATE TABLE IF NOT EXISTS ` + tables.Notes + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			line_id UUID NOT NULL REFERENCES ` + tables.Timelines + `(id),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'published' CHECK (status IN ('draft', 'published')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createNotes); err != nil {
		return err
	}

	// Create indexes. The unique index on number backs the retried
	// atomic lane-number allocation.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_` + tablePrefix + `timelines_number ON ` + tables.Timelines + `(number)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `notes_line_id ON ` + tables.Notes + `(line_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `notes_status_created ON ` + tables.Notes + `(status, created_at)`,
	}
	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	for _, table := range []string{tables.Notes, tables.Timelines} {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return err
		}
		log.Printf("  dropped %s", table)
	}
	return nil
}

// clearAllData deletes all notes, then all timelines
func clearAllData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Notes); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Timelines); err != nil {
		return err
	}
	return nil
}
