package handler

import (
	"log/slog"
	"net/http"

	"chronoflow/internal/api"
	"chronoflow/internal/domain/models"
	"chronoflow/internal/domain/services"
	"chronoflow/internal/httputil"
)

// TimelineHandler handles timeline HTTP requests
type TimelineHandler struct {
	timelineService services.TimelineService
	logger          *slog.Logger
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService services.TimelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		logger:          logger,
	}
}

// AddTimeline creates a new timeline lane. Takes no input; the lane
// number is server-assigned.
// POST /api/timelines
func (h *TimelineHandler) AddTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.timelineService.AddTimeline(r.Context())
	if err != nil {
		h.logger.Error("add timeline failed", "error", err)
		httputil.RespondJSON(w, statusForMutationError(err), api.AddTimelineResult{
			Success: false,
			Error:   "Failed to add timeline.",
		})
		return
	}

	hydrated := timeline.Hydrate()
	httputil.RespondJSON(w, http.StatusCreated, api.AddTimelineResult{
		Success:     true,
		NewTimeline: &hydrated,
	})
}

// ListTimelines retrieves all timelines ordered by number
// GET /api/timelines
func (h *TimelineHandler) ListTimelines(w http.ResponseWriter, r *http.Request) {
	timelines, err := h.timelineService.ListTimelines(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	hydrated := make([]models.TimelineHydrated, 0, len(timelines))
	for i := range timelines {
		hydrated = append(hydrated, timelines[i].Hydrate())
	}

	httputil.RespondJSON(w, http.StatusOK, hydrated)
}
