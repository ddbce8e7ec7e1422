package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"

	dErrors "permitgate/pkg/domain-errors"
)

// NationalID is the applicant's national identity number.
// Invariant: 6-20 characters from [A-Z0-9-]; lowercase input is normalized.
//
// Usage: construct via ParseNationalID at trust boundaries to enforce the
// format; direct casting bypasses validation.
type NationalID string

var nationalIDPattern = regexp.MustCompile(`^[A-Z0-9-]{6,20}$`)

// ParseNationalID constructs a NationalID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or malformed; no
// other errors are expected. Validation happens before any store access so a
// bad identifier can never produce a false "clean" screening.
func ParseNationalID(s string) (NationalID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "national id cannot be empty")
	}
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !nationalIDPattern.MatchString(normalized) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "national id has invalid format")
	}
	return NationalID(normalized), nil
}

// String returns the string representation.
func (n NationalID) String() string {
	return string(n)
}

// IsNil returns true if the national id is empty.
func (n NationalID) IsNil() bool {
	return n == ""
}

// Hash returns a SHA-256 hex digest of the national id. Audit events carry
// this instead of the raw identifier so the event stream holds no PII.
func (n NationalID) Hash() string {
	sum := sha256.Sum256([]byte(n))
	return hex.EncodeToString(sum[:])
}

// ApplicationID identifies a permit application record.
type ApplicationID uuid.UUID

// ParseApplicationID constructs an ApplicationID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID.
func ParseApplicationID(s string) (ApplicationID, error) {
	if s == "" {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "application id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "application id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return ApplicationID{}, dErrors.New(dErrors.CodeInvalidInput, "application id cannot be the nil UUID")
	}
	return ApplicationID(parsed), nil
}

// NewApplicationID generates a fresh application id.
func NewApplicationID() ApplicationID {
	return ApplicationID(uuid.New())
}

// String returns the canonical UUID string.
func (a ApplicationID) String() string {
	return uuid.UUID(a).String()
}

// IsNil returns true if the application id is the nil UUID.
func (a ApplicationID) IsNil() bool {
	return uuid.UUID(a) == uuid.Nil
}
