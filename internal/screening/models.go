// Package screening implements the security risk engine that gates automatic
// permit approval. Five independent read-only detectors consult the record
// store; their signals are folded into one bounded score, a severity tier,
// and the review-routing booleans downstream automation depends on.
//
// The engine is stateless: every call computes a fresh result from store
// state and never persists it. Repeated calls against unchanged store state
// return identical results, including flag order.
package screening

import (
	"time"

	"permitgate/pkg/domain"
)

// Request identifies the applicant being screened.
type Request struct {
	NationalID  domain.NationalID
	PhoneNumber string
	FullName    string
	// CurrentApplicationID excludes the application being screened from the
	// duplicate lookup so it cannot flag itself. Nil when screening happens
	// before the application record exists.
	CurrentApplicationID domain.ApplicationID
}

// Details records which signals fired. Fields are pointers so a signal that
// did not fire is absent from the serialized result rather than false; the
// contract is "key present iff signal fired".
type Details struct {
	WatchlistMatch       *bool `json:"watchlist_match,omitempty"`
	DuplicateApplication *bool `json:"duplicate_application,omitempty"`
	RecentRejection      *bool `json:"recent_rejection,omitempty"`
	OverstayHistory      *bool `json:"overstay_history,omitempty"`
	SuspiciousPattern    *bool `json:"suspicious_pattern,omitempty"`
}

// Result is the screening verdict. It is ephemeral: the engine computes it
// per call and the caller owns it entirely once returned.
//
// Invariants: 0 <= RiskScore <= 100; Severity is always derived from the
// clamped RiskScore via the fixed bands in rules.go, never set independently;
// Flags preserve detector evaluation order.
type Result struct {
	RiskScore                int             `json:"risk_score"`
	Severity                 domain.Severity `json:"severity"`
	Passed                   bool            `json:"passed"`
	RequiresSupervisorReview bool            `json:"requires_supervisor_review"`
	RequiresManualReview     bool            `json:"requires_manual_review"`
	Flags                    []string        `json:"flags"`
	Details                  Details         `json:"details"`
	EvaluatedAt              time.Time       `json:"evaluated_at"`
}
