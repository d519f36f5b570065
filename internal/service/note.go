package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chronoflow/internal/config"
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
	"chronoflow/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// noteService implements the NoteService interface
type noteService struct {
	noteRepo repositories.NoteRepository
	txm      repositories.TransactionManager
	board    services.BoardService
	logger   *slog.Logger
	now      func() time.Time
}

// NewNoteService creates a new note service. txm and board may be nil
// when no transaction support or snapshot cache is in play (seeding,
// tests).
func NewNoteService(
	noteRepo repositories.NoteRepository,
	txm repositories.TransactionManager,
	board services.BoardService,
	logger *slog.Logger,
) services.NoteService {
	return &noteService{
		noteRepo: noteRepo,
		txm:      txm,
		board:    board,
		logger:   logger,
		now:      time.Now,
	}
}

// AddNote publishes a note. With DraftID set, the existing draft is
// promoted in place: same id, fields overwritten, status flipped to
// published and created_at reassigned to the publish time.
func (s *noteService) AddNote(ctx context.Context, req *services.AddNoteRequest) (*models.Note, error) {
	// Trim before validating so a whitespace-only title is rejected,
	// not stored as empty.
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validateAddNote(req); err != nil {
		return nil, err
	}

	if req.DraftID != "" {
		return s.promoteDraft(ctx, req)
	}

	note := &models.Note{
		LineID:  req.LineID,
		Title:   req.Title,
		Content: req.Content,
		Status:  models.NoteStatusPublished,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	if s.board != nil {
		s.board.Invalidate()
	}

	s.logger.Info("note published",
		"id", note.ID,
		"line_id", note.LineID,
	)

	return note, nil
}

// promoteDraft flips an existing draft to published. The status
// transition is one-way; a published note passed in here is simply
// overwritten and stays published. Read and write happen in one
// transaction so a concurrent save of the same draft cannot interleave.
func (s *noteService) promoteDraft(ctx context.Context, req *services.AddNoteRequest) (*models.Note, error) {
	var note *models.Note
	promote := func(ctx context.Context) error {
		var err error
		note, err = s.noteRepo.GetByID(ctx, req.DraftID)
		if err != nil {
			return err
		}

		note.LineID = req.LineID
		note.Title = req.Title
		note.Content = req.Content
		note.Status = models.NoteStatusPublished
		note.CreatedAt = s.now()

		return s.noteRepo.Update(ctx, note)
	}

	var err error
	if s.txm != nil {
		err = s.txm.ExecTx(ctx, promote)
	} else {
		err = promote(ctx)
	}
	if err != nil {
		return nil, err
	}

	if s.board != nil {
		s.board.Invalidate()
	}

	s.logger.Info("draft promoted",
		"id", note.ID,
		"line_id", note.LineID,
	)

	return note, nil
}

// SaveDraft creates or updates a draft. Title and content may be empty;
// a new untitled draft gets a placeholder title. Saving the same draft
// twice with the same fields is idempotent.
func (s *noteService) SaveDraft(ctx context.Context, req *services.SaveDraftRequest) (string, error) {
	if err := s.validateSaveDraft(req); err != nil {
		return "", err
	}

	if req.DraftID != "" {
		note, err := s.noteRepo.GetByID(ctx, req.DraftID)
		if err != nil {
			return "", err
		}

		note.LineID = req.LineID
		note.Title = strings.TrimSpace(req.Title)
		note.Content = req.Content

		if err := s.noteRepo.Update(ctx, note); err != nil {
			return "", err
		}

		if s.board != nil {
			s.board.Invalidate()
		}

		return note.ID, nil
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = config.DraftTitlePlaceholder
	}

	note := &models.Note{
		LineID:  req.LineID,
		Title:   title,
		Content: req.Content,
		Status:  models.NoteStatusDraft,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return "", err
	}

	if s.board != nil {
		s.board.Invalidate()
	}

	s.logger.Info("draft saved",
		"id", note.ID,
		"line_id", note.LineID,
	)

	return note.ID, nil
}

// ListNotes retrieves notes matching the filter
func (s *noteService) ListNotes(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	return s.noteRepo.List(ctx, filter)
}

// validateAddNote validates a publish request; all three fields are
// required.
func (s *noteService) validateAddNote(req *services.AddNoteRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("Title is required"),
			validation.Length(0, config.MaxNoteTitleLength),
		),
		validation.Field(&req.Content,
			validation.Required.Error("Content is required"),
			validation.Length(0, config.MaxNoteContentLength),
		),
		validation.Field(&req.LineID,
			validation.Required.Error("Timeline selection is required"),
		),
	)
	return fieldErrorsFrom(err)
}

// validateSaveDraft validates a draft save; only the timeline is
// required, drafts are allowed to be incomplete.
func (s *noteService) validateSaveDraft(req *services.SaveDraftRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Length(0, config.MaxNoteTitleLength),
		),
		validation.Field(&req.Content,
			validation.Length(0, config.MaxNoteContentLength),
		),
		validation.Field(&req.LineID,
			validation.Required.Error("Timeline selection is required"),
		),
	)
	return fieldErrorsFrom(err)
}

// fieldErrorsFrom converts ozzo validation errors into the domain's
// per-field error map. Keys follow the struct's json tags.
func fieldErrorsFrom(err error) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := make(domain.FieldErrors, len(errs))
	for field, fieldErr := range errs {
		fields[field] = append(fields[field], fieldErr.Error())
	}
	return fields
}
