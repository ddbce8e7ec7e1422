package screening

import (
	"context"
	"errors"
	"fmt"

	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
)

// detailKey names a Details field a detector can set.
type detailKey int

const (
	detailWatchlistMatch detailKey = iota
	detailDuplicateApplication
	detailRecentRejection
	detailOverstayHistory
	detailSuspiciousPattern
)

// outcome is one detector's contribution: zero or more flags, a weight, and
// the detail keys to mark. A detector that found nothing returns the zero
// outcome.
type outcome struct {
	flags   []string
	weight  int
	details []detailKey
}

// detector pairs a stable name (metrics label, trace attribute) with its
// evaluation function. The order of the detectors slice defines flag order
// in the result; it must not depend on completion order.
type detector struct {
	name string
	run  func(ctx context.Context, s *Service, req Request) (outcome, error)
}

// detectors in evaluation order. Signals are independent read-only queries;
// the coordinator may run them concurrently but merges outcomes in this
// order.
var detectors = []detector{
	{name: "watchlist", run: detectWatchlist},
	{name: "duplicate", run: detectDuplicate},
	{name: "recent_rejection", run: detectRecentRejection},
	{name: "overstay", run: detectOverstay},
	{name: "shared_phone", run: detectSharedPhone},
}

// detectWatchlist contributes the first effectively active watchlist entry,
// weighted by the entry's severity. The final verdict severity is always
// recomputed from the total score, never copied from the entry.
func detectWatchlist(ctx context.Context, s *Service, req Request) (outcome, error) {
	hit, err := s.watchlist.FindActiveEntry(ctx, req.NationalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("watchlist detector: %w", err)
	}
	return outcome{
		flags:   []string{fmt.Sprintf("WATCHLIST: %s - %s", hit.FlagType, hit.Reason)},
		weight:  watchlistWeights[hit.Severity],
		details: []detailKey{detailWatchlistMatch},
	}, nil
}

// detectDuplicate contributes an existing application for the same identity,
// excluding the application being screened. A still-pending duplicate means
// two live submissions exist at once, which additionally raises the
// suspicious-pattern signal with its own weight.
func detectDuplicate(ctx context.Context, s *Service, req Request) (outcome, error) {
	dup, err := s.applications.FindDuplicate(ctx, req.NationalID, req.CurrentApplicationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("duplicate detector: %w", err)
	}

	out := outcome{
		flags:   []string{fmt.Sprintf("DUPLICATE: Application %s already exists", dup.ReferenceNumber)},
		weight:  weightDuplicate,
		details: []detailKey{detailDuplicateApplication},
	}
	if dup.Status.IsPending() {
		out.flags = append(out.flags, fmt.Sprintf("SUSPICIOUS: Pending application %s for the same identity", dup.ReferenceNumber))
		out.weight += weightSuspicious
		out.details = append(out.details, detailSuspiciousPattern)
	}
	return out, nil
}

// detectRecentRejection contributes the most recent rejection when it falls
// inside the configured lookback window.
func detectRecentRejection(ctx context.Context, s *Service, req Request) (outcome, error) {
	rejection, err := s.applications.FindLatestRejection(ctx, req.NationalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("recent rejection detector: %w", err)
	}

	cutoff := requestcontext.Now(ctx).AddDate(0, 0, -s.cfg.RejectionLookbackDays)
	if rejection.RejectionDate.Before(cutoff) {
		return outcome{}, nil
	}
	return outcome{
		flags: []string{fmt.Sprintf("RECENT_REJECTION: Application %s rejected on %s",
			rejection.ReferenceNumber, rejection.RejectionDate.Format("2006-01-02"))},
		weight:  weightRecentRejection,
		details: []detailKey{detailRecentRejection},
	}, nil
}

// detectOverstay contributes prior overstay history. The weight is fixed
// regardless of day count; the day count appears in the flag for reviewers.
func detectOverstay(ctx context.Context, s *Service, req Request) (outcome, error) {
	overstay, err := s.applications.FindOverstayRecord(ctx, req.NationalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("overstay detector: %w", err)
	}
	if overstay.Days <= 0 {
		return outcome{}, nil
	}
	return outcome{
		flags:   []string{fmt.Sprintf("OVERSTAY_HISTORY: %d days overstay", overstay.Days)},
		weight:  weightOverstay,
		details: []detailKey{detailOverstayHistory},
	}, nil
}

// detectSharedPhone contributes cross-application correlation: several
// distinct identities applying with one phone number. Independent of, and
// additive with, the pending-duplicate suspicious signal; the detail key is
// shared but each distinct cause carries its own weight.
func detectSharedPhone(ctx context.Context, s *Service, req Request) (outcome, error) {
	if req.PhoneNumber == "" {
		return outcome{}, nil
	}
	count, err := s.applications.CountDistinctIdentitiesByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return outcome{}, fmt.Errorf("shared phone detector: %w", err)
	}
	if count < s.cfg.SharedPhoneThreshold {
		return outcome{}, nil
	}
	return outcome{
		flags:   []string{fmt.Sprintf("SUSPICIOUS: Phone number shared across %d identities", count)},
		weight:  weightSuspicious,
		details: []detailKey{detailSuspiciousPattern},
	}, nil
}
