// Package watchlist manages identity-keyed flag records. Entries are never
// hard-deleted: removal flips is_active so the audit history of who was
// flagged, why, and by whom survives.
package watchlist

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"permitgate/pkg/domain"
	dErrors "permitgate/pkg/domain-errors"
)

// FlagType categorizes why an identity is on the watchlist. FRAUD,
// SECURITY_CONCERN, and OVERSTAY are the built-in types; institutions may
// define additional tags, so parsing enforces shape rather than an allowlist.
type FlagType string

const (
	FlagFraud           FlagType = "FRAUD"
	FlagSecurityConcern FlagType = "SECURITY_CONCERN"
	FlagOverstay        FlagType = "OVERSTAY"
)

var flagTypePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]{2,39}$`)

// ParseFlagType constructs a FlagType from external input.
func ParseFlagType(s string) (FlagType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "flag type cannot be empty")
	}
	if !flagTypePattern.MatchString(s) {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "invalid flag type: %s", s)
	}
	return FlagType(s), nil
}

// String returns the string representation.
func (f FlagType) String() string {
	return string(f)
}

// Entry is a persisted flag associating an identity with a concern.
type Entry struct {
	ID         uuid.UUID         `json:"id"`
	NationalID domain.NationalID `json:"national_id"`
	FullName   string            `json:"full_name"`
	Reason     string            `json:"reason"`
	FlagType   FlagType          `json:"flag_type"`
	Severity   domain.Severity   `json:"severity"`
	IsActive   bool              `json:"is_active"`
	ExpiresAt  *time.Time        `json:"expires_at,omitempty"`
	CreatedBy  string            `json:"created_by,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// EffectivelyActive reports whether the entry counts for screening at the
// given instant: is_active and either no expiry or an expiry in the future.
// An expired entry with is_active still set must be treated as inactive.
func (e *Entry) EffectivelyActive(now time.Time) bool {
	if !e.IsActive {
		return false
	}
	return e.ExpiresAt == nil || e.ExpiresAt.After(now)
}
