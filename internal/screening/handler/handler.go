// Package handler wires the screening engine to HTTP. The handler is a thin
// transport layer; all decision logic lives in the screening service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"permitgate/internal/screening"
	"permitgate/pkg/platform/httputil"
	"permitgate/pkg/requestcontext"
)

// Service defines the interface for screening operations.
type Service interface {
	Run(ctx context.Context, req screening.Request) (*screening.Result, error)
}

// Handler wires screening endpoints to the screening service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a screening handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts screening endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/screening/run", h.HandleRun)
}

// HandleRun handles POST /screening/run requests.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeJSON[RunRequest](w, r, h.logger)
	if !ok {
		return
	}

	domainReq, err := req.Parse()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Run(ctx, domainReq)
	if err != nil {
		h.logger.ErrorContext(ctx, "screening failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "screening handled",
		"request_id", requestID,
		"severity", result.Severity,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
