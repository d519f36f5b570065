package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chronoflow/internal/api"
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
	"chronoflow/internal/domain/services"
	svc "chronoflow/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTimelineService implements services.TimelineService
type fakeTimelineService struct {
	timeline *models.Timeline
	err      error
}

func (f *fakeTimelineService) AddTimeline(ctx context.Context) (*models.Timeline, error) {
	return f.timeline, f.err
}

func (f *fakeTimelineService) ListTimelines(ctx context.Context) ([]models.Timeline, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.timeline == nil {
		return []models.Timeline{}, nil
	}
	return []models.Timeline{*f.timeline}, nil
}

// fakeNoteService implements services.NoteService
type fakeNoteService struct {
	note    *models.Note
	draftID string
	err     error
}

func (f *fakeNoteService) AddNote(ctx context.Context, req *services.AddNoteRequest) (*models.Note, error) {
	return f.note, f.err
}

func (f *fakeNoteService) SaveDraft(ctx context.Context, req *services.SaveDraftRequest) (string, error) {
	return f.draftID, f.err
}

func (f *fakeNoteService) ListNotes(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Note{}, nil
}

// fakeAssistService implements services.AssistService
type fakeAssistService struct {
	title   string
	summary string
	err     error
}

func (f *fakeAssistService) SuggestTitle(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrValidation
	}
	return f.title, f.err
}

func (f *fakeAssistService) SummarizeNote(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrValidation
	}
	return f.summary, f.err
}

func TestAddTimeline_SuccessEnvelope(t *testing.T) {
	timeline := &models.Timeline{
		ID:        "t1",
		Number:    3,
		CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	h := NewTimelineHandler(&fakeTimelineService{timeline: timeline}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/timelines", nil)
	rec := httptest.NewRecorder()
	h.AddTimeline(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	var result api.AddTimelineResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success {
		t.Error("success = false, want true")
	}
	if result.NewTimeline == nil || result.NewTimeline.Number != 3 {
		t.Errorf("newTimeline = %+v, want number 3", result.NewTimeline)
	}
	if result.NewTimeline.CreatedAt != "2024-01-03T00:00:00Z" {
		t.Errorf("createdAt = %q, want RFC 3339 string", result.NewTimeline.CreatedAt)
	}
}

func TestAddTimeline_FailureEnvelope(t *testing.T) {
	h := NewTimelineHandler(&fakeTimelineService{err: errors.New("pool exhausted")}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/timelines", nil)
	rec := httptest.NewRecorder()
	h.AddTimeline(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var result api.AddTimelineResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Success {
		t.Error("success = true, want false")
	}
	if result.Error != "Failed to add timeline." {
		t.Errorf("error = %q, want generic message", result.Error)
	}
	if strings.Contains(rec.Body.String(), "pool exhausted") {
		t.Error("response leaks internal error detail")
	}
}

func TestAddNote_ValidationEnvelope(t *testing.T) {
	// Wire the real service so the field-error map comes from actual
	// validation, not a fake.
	noteService := svc.NewNoteService(stubNoteRepo{}, nil, nil, discardLogger())
	h := NewNoteHandler(noteService, discardLogger())

	body := strings.NewReader(`{"title":"","content":"x","lineId":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notes", body)
	rec := httptest.NewRecorder()
	h.AddNote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var result api.AddNoteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Success {
		t.Error("success = true, want false")
	}
	if len(result.Errors["title"]) == 0 {
		t.Errorf("errors = %v, want title entry", result.Errors)
	}
	if result.Error != "" {
		t.Errorf("error = %q, want empty (field errors instead)", result.Error)
	}
}

func TestAddNote_SuccessEnvelope(t *testing.T) {
	note := &models.Note{
		ID:        "d1",
		LineID:    "t1",
		Title:     "T",
		Content:   "C",
		Status:    models.NoteStatusPublished,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	h := NewNoteHandler(&fakeNoteService{note: note}, discardLogger())

	body := strings.NewReader(`{"title":"T","content":"C","lineId":"t1","draftId":"d1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notes", body)
	rec := httptest.NewRecorder()
	h.AddNote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (promotion)", rec.Code, http.StatusOK)
	}
	var result api.AddNoteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success || result.NewNote == nil {
		t.Fatalf("result = %+v, want success with note", result)
	}
	if result.NewNote.ID != "d1" || result.NewNote.Status != models.NoteStatusPublished {
		t.Errorf("newNote = %+v, want published d1", result.NewNote)
	}
}

func TestSaveDraft_Envelope(t *testing.T) {
	h := NewNoteHandler(&fakeNoteService{draftID: "d1"}, discardLogger())

	body := strings.NewReader(`{"lineId":"t1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/drafts", body)
	rec := httptest.NewRecorder()
	h.SaveDraft(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var result api.SaveDraftResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success || result.DraftID != "d1" {
		t.Errorf("result = %+v, want success with draftId d1", result)
	}
}

func TestSuggestTitle_EmptyContent(t *testing.T) {
	h := NewAssistHandler(&fakeAssistService{title: "unused"}, discardLogger())

	body := strings.NewReader(`{"content":"  "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assist/title", body)
	rec := httptest.NewRecorder()
	h.SuggestTitle(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var result api.TitleResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Error != "Content is empty." {
		t.Errorf("error = %q, want content-empty message", result.Error)
	}
}

func TestSuggestTitle_Success(t *testing.T) {
	h := NewAssistHandler(&fakeAssistService{title: "A Fine Title"}, discardLogger())

	body := strings.NewReader(`{"content":"some note text"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/assist/title", body)
	rec := httptest.NewRecorder()
	h.SuggestTitle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var result api.TitleResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Title != "A Fine Title" {
		t.Errorf("title = %q", result.Title)
	}
}

// stubNoteRepo fails the test if any method is reached; validation must
// reject the request before storage is touched.
type stubNoteRepo struct{}

func (stubNoteRepo) Create(ctx context.Context, note *models.Note) error {
	return errors.New("storage touched on invalid input")
}

func (stubNoteRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	return nil, errors.New("storage touched on invalid input")
}

func (stubNoteRepo) Update(ctx context.Context, note *models.Note) error {
	return errors.New("storage touched on invalid input")
}

func (stubNoteRepo) List(ctx context.Context, filter repositories.NoteFilter) ([]models.Note, error) {
	return nil, errors.New("storage touched on invalid input")
}
