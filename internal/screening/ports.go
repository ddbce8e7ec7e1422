package screening

import (
	"context"
	"time"

	"permitgate/pkg/domain"
)

// Ports are the engine's view of the record store, kept narrow so detectors
// are independently testable with fakes and so this package does not depend
// on store packages. Adapters in internal/screening/adapters wrap the
// concrete stores.
//
// Lookups return sentinel.ErrNotFound when no matching record exists; any
// other error is a store failure and aborts the whole screening call.

// WatchlistHit is the first effectively active watchlist entry for an
// identity.
type WatchlistHit struct {
	FlagType string
	Reason   string
	Severity domain.Severity
}

// WatchlistSource looks up active watchlist entries.
type WatchlistSource interface {
	FindActiveEntry(ctx context.Context, nationalID domain.NationalID) (*WatchlistHit, error)
}

// DuplicateRecord is an existing application for the screened identity.
type DuplicateRecord struct {
	ReferenceNumber string
	Status          domain.ApplicationStatus
}

// RejectionRecord is the most recent rejection for the screened identity.
type RejectionRecord struct {
	ReferenceNumber string
	RejectionDate   time.Time
}

// OverstayRecord is the identity's worst recorded overstay.
type OverstayRecord struct {
	Days int
}

// ApplicationSource looks up application history signals.
type ApplicationSource interface {
	FindDuplicate(ctx context.Context, nationalID domain.NationalID, excludeID domain.ApplicationID) (*DuplicateRecord, error)
	FindLatestRejection(ctx context.Context, nationalID domain.NationalID) (*RejectionRecord, error)
	FindOverstayRecord(ctx context.Context, nationalID domain.NationalID) (*OverstayRecord, error)
	// CountDistinctIdentitiesByPhone returns how many distinct national ids
	// have applications sharing the phone number, including the caller's.
	CountDistinctIdentitiesByPhone(ctx context.Context, phoneNumber string) (int, error)
}
