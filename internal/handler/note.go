package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chronoflow/internal/api"
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/repositories"
	"chronoflow/internal/domain/services"
	"chronoflow/internal/httputil"
)

// NoteHandler handles note HTTP requests
type NoteHandler struct {
	noteService services.NoteService
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService services.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// AddNote publishes a note, promoting an existing draft in place when
// draftId is present.
// POST /api/notes
func (h *NoteHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req services.AddNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, api.AddNoteResult{
			Success: false,
			Error:   "Invalid request body.",
		})
		return
	}

	note, err := h.noteService.AddNote(r.Context(), &req)
	if err != nil {
		if fields := domain.AsFieldErrors(err); fields != nil {
			httputil.RespondJSON(w, http.StatusBadRequest, api.AddNoteResult{
				Success: false,
				Errors:  fields,
			})
			return
		}
		h.logger.Error("add note failed", "error", err, "line_id", req.LineID)
		httputil.RespondJSON(w, statusForMutationError(err), api.AddNoteResult{
			Success: false,
			Error:   "Failed to add note.",
		})
		return
	}

	hydrated := note.Hydrate()
	status := http.StatusCreated
	if req.DraftID != "" {
		status = http.StatusOK
	}
	httputil.RespondJSON(w, status, api.AddNoteResult{
		Success: true,
		NewNote: &hydrated,
	})
}

// SaveDraft creates or updates a draft. Incomplete drafts are allowed.
// POST /api/drafts
func (h *NoteHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req services.SaveDraftRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, api.SaveDraftResult{
			Success: false,
			Error:   "Invalid request body.",
		})
		return
	}

	draftID, err := h.noteService.SaveDraft(r.Context(), &req)
	if err != nil {
		if fields := domain.AsFieldErrors(err); fields != nil {
			httputil.RespondJSON(w, http.StatusBadRequest, api.SaveDraftResult{
				Success: false,
				Errors:  fields,
			})
			return
		}
		h.logger.Error("save draft failed", "error", err, "line_id", req.LineID)
		httputil.RespondJSON(w, statusForMutationError(err), api.SaveDraftResult{
			Success: false,
			Error:   "Failed to save draft.",
		})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, api.SaveDraftResult{
		Success: true,
		DraftID: draftID,
	})
}

// ListNotes retrieves notes, optionally filtered by timeline or status
// GET /api/notes?lineId=&status=
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	filter := repositories.NoteFilter{
		LineID: r.URL.Query().Get("lineId"),
		Status: models.NoteStatus(r.URL.Query().Get("status")),
	}

	notes, err := h.noteService.ListNotes(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		handleError(w, err)
		return
	}

	hydrated := make([]models.NoteHydrated, 0, len(notes))
	for i := range notes {
		hydrated = append(hydrated, notes[i].Hydrate())
	}

	httputil.RespondJSON(w, http.StatusOK, hydrated)
}
