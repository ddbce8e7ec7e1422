// Package handler exposes watchlist administration over HTTP. Mutations
// require admin authentication; the check endpoint is available to the
// submission workflow.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"permitgate/internal/watchlist"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/httputil"
	"permitgate/pkg/requestcontext"
)

// Service defines the interface for watchlist operations.
type Service interface {
	Add(ctx context.Context, params watchlist.AddParams) (*watchlist.Entry, error)
	Remove(ctx context.Context, nationalID domain.NationalID, flagType watchlist.FlagType) (int, error)
	Check(ctx context.Context, nationalID domain.NationalID) (bool, error)
}

// Handler wires watchlist endpoints to the watchlist service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a watchlist handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts watchlist endpoints. adminOnly guards mutations.
func (h *Handler) Register(r chi.Router, adminOnly func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(adminOnly)
		r.Post("/watchlist", h.HandleAdd)
		r.Delete("/watchlist/{nationalID}", h.HandleRemove)
	})
	r.Get("/watchlist/{nationalID}/check", h.HandleCheck)
}

// AddRequest is the wire shape for creating a watchlist entry.
type AddRequest struct {
	NationalID string     `json:"national_id"`
	FullName   string     `json:"full_name"`
	Reason     string     `json:"reason"`
	FlagType   string     `json:"flag_type"`
	Severity   string     `json:"severity"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// HandleAdd handles POST /watchlist requests.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeJSON[AddRequest](w, r, h.logger)
	if !ok {
		return
	}

	nationalID, err := domain.ParseNationalID(req.NationalID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	flagType, err := watchlist.ParseFlagType(req.FlagType)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	severity, err := domain.ParseSeverity(req.Severity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.service.Add(ctx, watchlist.AddParams{
		NationalID: nationalID,
		FullName:   req.FullName,
		Reason:     req.Reason,
		FlagType:   flagType,
		Severity:   severity,
		ExpiresAt:  req.ExpiresAt,
		CreatedBy:  requestcontext.ActorID(ctx),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "watchlist add failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, entry)
}

// RemoveResponse reports how many entries a removal deactivated.
type RemoveResponse struct {
	Deactivated int `json:"deactivated"`
}

// HandleRemove handles DELETE /watchlist/{nationalID} requests. An optional
// flag_type query parameter restricts the removal to one flag type.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	nationalID, err := domain.ParseNationalID(chi.URLParam(r, "nationalID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var flagType watchlist.FlagType
	if raw := r.URL.Query().Get("flag_type"); raw != "" {
		flagType, err = watchlist.ParseFlagType(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
	}

	count, err := h.service.Remove(ctx, nationalID, flagType)
	if err != nil {
		h.logger.ErrorContext(ctx, "watchlist remove failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, RemoveResponse{Deactivated: count})
}

// CheckResponse reports whether an identity is effectively on the watchlist.
type CheckResponse struct {
	Listed bool `json:"listed"`
}

// HandleCheck handles GET /watchlist/{nationalID}/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	nationalID, err := domain.ParseNationalID(chi.URLParam(r, "nationalID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	listed, err := h.service.Check(ctx, nationalID)
	if err != nil {
		h.logger.ErrorContext(ctx, "watchlist check failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CheckResponse{Listed: listed})
}
