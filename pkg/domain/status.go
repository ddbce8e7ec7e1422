package domain

import dErrors "permitgate/pkg/domain-errors"

// ApplicationStatus is the lifecycle state of a permit application.
type ApplicationStatus string

// Supported application statuses.
const (
	StatusSubmitted   ApplicationStatus = "SUBMITTED"
	StatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	StatusApproved    ApplicationStatus = "APPROVED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusActive      ApplicationStatus = "ACTIVE"
	StatusExpired     ApplicationStatus = "EXPIRED"
)

var validStatuses = map[ApplicationStatus]bool{
	StatusSubmitted:   true,
	StatusUnderReview: true,
	StatusApproved:    true,
	StatusRejected:    true,
	StatusActive:      true,
	StatusExpired:     true,
}

// ParseApplicationStatus constructs an ApplicationStatus from external input.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "application status cannot be empty")
	}
	status := ApplicationStatus(s)
	if !validStatuses[status] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid application status: %s", s)
	}
	return status, nil
}

// IsValid checks if the status is one of the supported lifecycle states.
func (s ApplicationStatus) IsValid() bool {
	return validStatuses[s]
}

// IsPending returns true for statuses that are not yet finalized. A pending
// duplicate is a stronger fraud signal than a terminal one: it means two
// live submissions exist for the same identity at once.
func (s ApplicationStatus) IsPending() bool {
	return s == StatusSubmitted || s == StatusUnderReview
}

// IsTerminal returns true for finalized statuses.
func (s ApplicationStatus) IsTerminal() bool {
	return s.IsValid() && !s.IsPending()
}

// String returns the string representation.
func (s ApplicationStatus) String() string {
	return string(s)
}
