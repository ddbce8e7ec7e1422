package handler

import (
	"time"

	"permitgate/internal/screening"
)

// RunResponse is the wire shape of a screening verdict.
type RunResponse struct {
	RiskScore                int               `json:"risk_score"`
	Severity                 string            `json:"severity"`
	Passed                   bool              `json:"passed"`
	RequiresSupervisorReview bool              `json:"requires_supervisor_review"`
	RequiresManualReview     bool              `json:"requires_manual_review"`
	Flags                    []string          `json:"flags"`
	Details                  screening.Details `json:"details"`
	EvaluatedAt              time.Time         `json:"evaluated_at"`
}

// FromResult converts a domain result to the wire shape.
func FromResult(result *screening.Result) RunResponse {
	return RunResponse{
		RiskScore:                result.RiskScore,
		Severity:                 result.Severity.String(),
		Passed:                   result.Passed,
		RequiresSupervisorReview: result.RequiresSupervisorReview,
		RequiresManualReview:     result.RequiresManualReview,
		Flags:                    result.Flags,
		Details:                  result.Details,
		EvaluatedAt:              result.EvaluatedAt,
	}
}
