package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chronoflow/internal/api"
	"chronoflow/internal/domain"
	"chronoflow/internal/domain/services"
	"chronoflow/internal/httputil"
)

// AssistHandler handles AI assistance HTTP requests
type AssistHandler struct {
	assistService services.AssistService
	logger        *slog.Logger
}

// NewAssistHandler creates a new assist handler
func NewAssistHandler(assistService services.AssistService, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{
		assistService: assistService,
		logger:        logger,
	}
}

// SuggestTitle generates a title suggestion for note content. The
// suggestion is advisory; the user confirms it before any save.
// POST /api/assist/title
func (h *AssistHandler) SuggestTitle(w http.ResponseWriter, r *http.Request) {
	var req api.AssistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, api.TitleResult{Error: "Invalid request body."})
		return
	}

	title, err := h.assistService.SuggestTitle(r.Context(), req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			httputil.RespondJSON(w, http.StatusBadRequest, api.TitleResult{Error: "Content is empty."})
			return
		}
		httputil.RespondJSON(w, http.StatusBadGateway, api.TitleResult{Error: "Failed to generate title."})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, api.TitleResult{Title: title})
}

// Summarize produces a concise summary of note content
// POST /api/assist/summary
func (h *AssistHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req api.AssistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondJSON(w, http.StatusBadRequest, api.SummaryResult{Error: "Invalid request body."})
		return
	}

	summary, err := h.assistService.SummarizeNote(r.Context(), req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			httputil.RespondJSON(w, http.StatusBadRequest, api.SummaryResult{Error: "Content is empty."})
			return
		}
		httputil.RespondJSON(w, http.StatusBadGateway, api.SummaryResult{Error: "Failed to summarize note."})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, api.SummaryResult{Summary: summary})
}
