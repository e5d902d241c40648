package handlers

import (
	"context"
	"net/http"
	"time"
)

// ReadinessChecker reports whether the backing store is reachable.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	db ReadinessChecker
}

func NewHealthHandler(db ReadinessChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ready(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
