package application

import (
	"context"

	"permitgate/pkg/domain"
)

// Store is the read contract over application records. All methods return
// sentinel.ErrNotFound when no matching record exists; any other error means
// the record store itself failed and the caller must abort rather than treat
// the miss as clean.
type Store interface {
	// FindByNationalID returns the oldest application for the identity,
	// excluding excludeID when non-nil so an application cannot flag itself
	// as its own duplicate.
	FindByNationalID(ctx context.Context, nationalID domain.NationalID, excludeID domain.ApplicationID) (*Record, error)

	// FindLatestRejection returns the most recently rejected application
	// for the identity, by rejection date.
	FindLatestRejection(ctx context.Context, nationalID domain.NationalID) (*Record, error)

	// FindOverstayRecord returns the identity's application with the
	// largest recorded overstay, if any overstay exists.
	FindOverstayRecord(ctx context.Context, nationalID domain.NationalID) (*Record, error)

	// FindBySharedPhone returns every identity's use of the phone number.
	// Multiple applications by one identity yield one PhoneUse each.
	FindBySharedPhone(ctx context.Context, phoneNumber string) ([]PhoneUse, error)
}
