package screening

import "permitgate/pkg/domain"

// Signal weights. These are the normative scoring constants; changing one
// changes which applications auto-approve, so they are deliberately not
// configurable at runtime.
const (
	weightDuplicate       = 40
	weightRecentRejection = 25
	weightOverstay        = 35
	weightSuspicious      = 30
)

// watchlistWeights keys the watchlist contribution by entry severity.
var watchlistWeights = map[domain.Severity]int{
	domain.SeverityLow:      15,
	domain.SeverityMedium:   30,
	domain.SeverityHigh:     50,
	domain.SeverityCritical: 80,
}

// clampScore bounds a raw signal sum to the closed range [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// severityForScore maps a clamped score to its tier. Bands apply to the
// final clamped score only; the watchlist entry's own severity seeds a
// weight but never the tier directly.
func severityForScore(score int) domain.Severity {
	switch {
	case score >= 80:
		return domain.SeverityCritical
	case score >= 50:
		return domain.SeverityHigh
	case score >= 30:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// decision derives the routing booleans from severity. Pure function of the
// tier:
//   - passed: LOW and MEDIUM auto-approve eligible
//   - supervisor review: HIGH and CRITICAL
//   - manual review: everything except LOW
type decision struct {
	passed                   bool
	requiresSupervisorReview bool
	requiresManualReview     bool
}

func decisionFor(severity domain.Severity) decision {
	return decision{
		passed:                   severity == domain.SeverityLow || severity == domain.SeverityMedium,
		requiresSupervisorReview: severity == domain.SeverityHigh || severity == domain.SeverityCritical,
		requiresManualReview:     severity != domain.SeverityLow,
	}
}
