package handler

import (
	"log/slog"
	"net/http"

	"chronoflow/internal/domain/services"
	"chronoflow/internal/httputil"
)

// BoardHandler serves the page-load snapshot
type BoardHandler struct {
	boardService services.BoardService
	logger       *slog.Logger
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService services.BoardService, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// GetBoard returns all timelines and published notes, hydrated
// GET /api/board
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.boardService.Snapshot(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snapshot)
}
