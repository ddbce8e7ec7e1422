package domain

import dErrors "permitgate/pkg/domain-errors"

// Severity is the risk tier of a watchlist entry or screening verdict.
// Invariant: the value must be one of the supported tiers, and tiers are
// totally ordered LOW < MEDIUM < HIGH < CRITICAL.
//
// Usage: construct via ParseSeverity at trust boundaries; compare with
// AtLeast rather than string comparison so the ordering stays in one place.
type Severity string

// Supported severity tiers.
const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// severityOrder is the single source of truth for tier ordering.
var severityOrder = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// ParseSeverity constructs a Severity from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseSeverity(s string) (Severity, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "severity cannot be empty")
	}
	sev := Severity(s)
	if !sev.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid severity: %s", s)
	}
	return sev, nil
}

// IsValid checks if the severity is one of the supported tiers.
func (s Severity) IsValid() bool {
	_, ok := severityOrder[s]
	return ok
}

// AtLeast returns true if this severity is >= other in tier order.
// Unknown severities rank below every known tier.
func (s Severity) AtLeast(other Severity) bool {
	thisOrder, thisOK := severityOrder[s]
	otherOrder, otherOK := severityOrder[other]
	if !thisOK {
		return false
	}
	if !otherOK {
		return true
	}
	return thisOrder >= otherOrder
}

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}
