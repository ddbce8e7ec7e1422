package screening

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"permitgate/internal/audit"
	"permitgate/internal/platform/config"
	"permitgate/internal/screening/metrics"
	"permitgate/pkg/domain"
	"permitgate/pkg/requestcontext"
)

// Service coordinates the detectors and folds their outcomes into a verdict.
type Service struct {
	watchlist    WatchlistSource
	applications ApplicationSource
	cfg          config.Screening
	audit        *audit.Publisher
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

// NewService constructs the screening service.
func NewService(
	watchlist WatchlistSource,
	applications ApplicationSource,
	cfg config.Screening,
	auditPub *audit.Publisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) (*Service, error) {
	if watchlist == nil {
		return nil, fmt.Errorf("watchlist source is required")
	}
	if applications == nil {
		return nil, fmt.Errorf("application source is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		watchlist:    watchlist,
		applications: applications,
		cfg:          cfg,
		audit:        auditPub,
		logger:       logger,
		metrics:      m,
		tracer:       otel.Tracer("permitgate/screening"),
	}, nil
}

// Run executes all detectors and returns the verdict.
//
// Detectors are independent read-only queries and run concurrently, but
// outcomes merge in fixed detector order, so flag order never depends on
// completion order. The first store failure cancels the remaining fetches
// and aborts the call: a storage failure must never read as "clean".
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if _, err := domain.ParseNationalID(req.NationalID.String()); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "screening.run")
	defer span.End()

	outcomes, err := s.gatherSignals(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := s.fold(ctx, outcomes)

	span.SetAttributes(
		attribute.Int("screening.risk_score", result.RiskScore),
		attribute.String("screening.severity", result.Severity.String()),
		attribute.Bool("screening.passed", result.Passed),
	)
	s.metrics.IncOutcome(result.Severity.String(), result.Passed)
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	s.audit.Emit(ctx, audit.Event{
		Category:      audit.CategoryCompliance,
		Action:        audit.ActionScreeningCompleted,
		SubjectIDHash: req.NationalID.Hash(),
		RequestID:     requestcontext.RequestID(ctx),
		Decision:      result.Severity.String(),
		Reason:        fmt.Sprintf("score=%d flags=%d", result.RiskScore, len(result.Flags)),
	})

	s.logger.InfoContext(ctx, "screening completed",
		"request_id", requestcontext.RequestID(ctx),
		"risk_score", result.RiskScore,
		"severity", result.Severity,
		"passed", result.Passed,
		"flags", len(result.Flags),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// gatherSignals fans the detectors out with shared context cancellation.
// Each outcome lands in its detector's fixed slot so the merge is
// deterministic.
func (s *Service) gatherSignals(ctx context.Context, req Request) ([]outcome, error) {
	g, ctx := errgroup.WithContext(ctx)
	outcomes := make([]outcome, len(detectors))

	for i, det := range detectors {
		g.Go(func() error {
			fetchStart := time.Now()
			out, err := det.run(ctx, s, req)
			s.metrics.ObserveSignalLatency(det.name, time.Since(fetchStart))
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// fold merges outcomes in detector order into the final result: flags
// append, weights sum then clamp, detail keys set once. Severity and the
// routing booleans derive from the clamped score only.
func (s *Service) fold(ctx context.Context, outcomes []outcome) *Result {
	result := &Result{
		Flags:       []string{},
		EvaluatedAt: requestcontext.Now(ctx),
	}

	total := 0
	for i, out := range outcomes {
		if out.weight == 0 && len(out.flags) == 0 {
			continue
		}
		s.metrics.IncSignalFired(detectors[i].name)
		result.Flags = append(result.Flags, out.flags...)
		total += out.weight
		for _, key := range out.details {
			result.Details.set(key)
		}
	}

	result.RiskScore = clampScore(total)
	result.Severity = severityForScore(result.RiskScore)
	d := decisionFor(result.Severity)
	result.Passed = d.passed
	result.RequiresSupervisorReview = d.requiresSupervisorReview
	result.RequiresManualReview = d.requiresManualReview
	return result
}

// set marks a detail key, idempotently: both suspicious-pattern causes may
// fire in one call but the key appears once.
func (d *Details) set(key detailKey) {
	fired := true
	switch key {
	case detailWatchlistMatch:
		if d.WatchlistMatch == nil {
			d.WatchlistMatch = &fired
		}
	case detailDuplicateApplication:
		if d.DuplicateApplication == nil {
			d.DuplicateApplication = &fired
		}
	case detailRecentRejection:
		if d.RecentRejection == nil {
			d.RecentRejection = &fired
		}
	case detailOverstayHistory:
		if d.OverstayHistory == nil {
			d.OverstayHistory = &fired
		}
	case detailSuspiciousPattern:
		if d.SuspiciousPattern == nil {
			d.SuspiciousPattern = &fired
		}
	}
}
