package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go-produtos-api/internal/model"
)

type pinger interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Health(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, model.HealthResponse{Status: "unavailable"})
			return
		}
	}

	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}
