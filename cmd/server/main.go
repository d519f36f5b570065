package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"chronoflow/internal/ai"
	"chronoflow/internal/config"
	"chronoflow/internal/handler"
	"chronoflow/internal/middleware"
	"chronoflow/internal/repository/postgres"
	"chronoflow/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.Debug {
		if f, err := config.SetupLogFile("logs", 10); err != nil {
			log.Printf("warning: file logging disabled: %v", err)
		} else {
			defer f.Close()
			logOutput = io.MultiWriter(os.Stdout, f)
		}
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	timelineRepo := postgres.NewTimelineRepository(repoConfig)
	noteRepo := postgres.NewNoteRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Pick the assistant backend
	var generator ai.Generator
	switch cfg.AssistProvider {
	case "lorem":
		generator = ai.NewLoremGenerator()
		logger.Warn("using lorem assistant (dev mode, no API calls)")
	default:
		if cfg.AnthropicAPIKey == "" {
			log.Fatalf("ANTHROPIC_API_KEY is required with ASSIST_PROVIDER=%s", cfg.AssistProvider)
		}
		generator = ai.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.AssistModel)
	}

	// Create services; mutation services invalidate the board cache
	boardService := service.NewBoardService(timelineRepo, noteRepo, logger)
	timelineService := service.NewTimelineService(timelineRepo, boardService, logger)
	noteService := service.NewNoteService(noteRepo, txManager, boardService, logger)
	assistService := service.NewAssistService(generator, logger)

	// Create handlers
	boardHandler := handler.NewBoardHandler(boardService, logger)
	timelineHandler := handler.NewTimelineHandler(timelineService, logger)
	noteHandler := handler.NewNoteHandler(noteService, logger)
	assistHandler := handler.NewAssistHandler(assistService, logger)

	logger.Info("services initialized", "assist_provider", cfg.AssistProvider)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Board snapshot (page load)
	mux.HandleFunc("GET /api/board", boardHandler.GetBoard)

	// Timeline routes
	mux.HandleFunc("GET /api/timelines", timelineHandler.ListTimelines)
	mux.HandleFunc("POST /api/timelines", timelineHandler.AddTimeline)

	// Note routes
	mux.HandleFunc("GET /api/notes", noteHandler.ListNotes)
	mux.HandleFunc("POST /api/notes", noteHandler.AddNote)
	mux.HandleFunc("POST /api/drafts", noteHandler.SaveDraft)

	// Assistant routes
	mux.HandleFunc("POST /api/assist/title", assistHandler.SuggestTitle)
	mux.HandleFunc("POST /api/assist/summary", assistHandler.Summarize)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.RequestLogging(logger)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
