package watchlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"permitgate/internal/audit"
	"permitgate/internal/watchlist/metrics"
	"permitgate/pkg/domain"
	dErrors "permitgate/pkg/domain-errors"
	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
)

// Service owns watchlist lifecycle rules: entries are appended without
// deduplication and retired by soft-deactivation only.
type Service struct {
	store   Store
	audit   *audit.Publisher
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the watchlist service.
func NewService(store Store, auditPub *audit.Publisher, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("watchlist store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, audit: auditPub, logger: logger, metrics: m}, nil
}

// AddParams carries the fields of a new watchlist entry.
type AddParams struct {
	NationalID domain.NationalID
	FullName   string
	Reason     string
	FlagType   FlagType
	Severity   domain.Severity
	ExpiresAt  *time.Time
	CreatedBy  string
}

// Add creates a new watchlist entry. Existing entries for the same identity
// are left untouched; lookups consider all of them, oldest active first.
func (s *Service) Add(ctx context.Context, params AddParams) (*Entry, error) {
	if params.NationalID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "national id is required")
	}
	if params.FullName == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "full name is required")
	}
	if params.Reason == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "reason is required")
	}
	if !params.Severity.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "severity is required")
	}
	if params.FlagType == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "flag type is required")
	}

	now := requestcontext.Now(ctx)
	if params.ExpiresAt != nil && !params.ExpiresAt.After(now) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "expiry must be in the future")
	}

	createdBy := params.CreatedBy
	if createdBy == "" {
		createdBy = requestcontext.ActorID(ctx)
	}

	entry := &Entry{
		ID:         uuid.New(),
		NationalID: params.NationalID,
		FullName:   params.FullName,
		Reason:     params.Reason,
		FlagType:   params.FlagType,
		Severity:   params.Severity,
		IsActive:   true,
		ExpiresAt:  params.ExpiresAt,
		CreatedBy:  createdBy,
		CreatedAt:  now,
	}

	if err := s.store.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("add watchlist entry: %w", err)
	}

	s.metrics.IncEntryAdded(entry.FlagType.String(), entry.Severity.String())
	s.audit.Emit(ctx, audit.Event{
		Category:      audit.CategorySecurity,
		Action:        audit.ActionWatchlistEntryAdded,
		SubjectIDHash: entry.NationalID.Hash(),
		ActorID:       requestcontext.ActorID(ctx),
		RequestID:     requestcontext.RequestID(ctx),
		Reason:        fmt.Sprintf("flag_type=%s severity=%s", entry.FlagType, entry.Severity),
		ClientIP:      requestcontext.ClientIP(ctx),
		UserAgent:     requestcontext.UserAgent(ctx),
	})

	s.logger.InfoContext(ctx, "watchlist entry added",
		"entry_id", entry.ID,
		"flag_type", entry.FlagType,
		"severity", entry.Severity,
		"actor", requestcontext.ActorID(ctx),
	)
	return entry, nil
}

// Remove soft-deactivates all active entries for the identity, restricted to
// flagType when non-empty. Removing a non-existent entry is a no-op.
func (s *Service) Remove(ctx context.Context, nationalID domain.NationalID, flagType FlagType) (int, error) {
	if nationalID.IsNil() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "national id is required")
	}

	count, err := s.store.Deactivate(ctx, nationalID, flagType)
	if err != nil {
		return 0, fmt.Errorf("remove watchlist entries: %w", err)
	}

	s.metrics.AddDeactivated(count)
	s.audit.Emit(ctx, audit.Event{
		Category:      audit.CategorySecurity,
		Action:        audit.ActionWatchlistDeactivated,
		SubjectIDHash: nationalID.Hash(),
		ActorID:       requestcontext.ActorID(ctx),
		RequestID:     requestcontext.RequestID(ctx),
		Reason:        fmt.Sprintf("flag_type=%s count=%d", flagType, count),
		ClientIP:      requestcontext.ClientIP(ctx),
		UserAgent:     requestcontext.UserAgent(ctx),
	})

	s.logger.InfoContext(ctx, "watchlist entries deactivated",
		"count", count,
		"flag_type", flagType,
		"actor", requestcontext.ActorID(ctx),
	)
	return count, nil
}

// Check reports whether an effectively active entry exists for the identity.
// Store failures propagate; a lookup error must never read as "clean".
func (s *Service) Check(ctx context.Context, nationalID domain.NationalID) (bool, error) {
	if nationalID.IsNil() {
		return false, dErrors.New(dErrors.CodeInvalidInput, "national id is required")
	}

	_, err := s.store.FindActive(ctx, nationalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncCheck("clean")
			return false, nil
		}
		s.metrics.IncCheck("error")
		s.audit.Emit(ctx, audit.Event{
			Category:      audit.CategorySecurity,
			Action:        audit.ActionWatchlistLookupFailed,
			SubjectIDHash: nationalID.Hash(),
			RequestID:     requestcontext.RequestID(ctx),
			Reason:        err.Error(),
		})
		return false, fmt.Errorf("check watchlist: %w", err)
	}
	s.metrics.IncCheck("hit")
	return true, nil
}
