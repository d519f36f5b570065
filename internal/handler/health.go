package handler

import (
	"net/http"

	"chronoflow/internal/httputil"
)

// HealthCheck responds to liveness probes
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
