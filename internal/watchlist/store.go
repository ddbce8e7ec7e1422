package watchlist

import (
	"context"

	"permitgate/pkg/domain"
)

// Store persists watchlist entries. Implementations must apply the expiry
// rule inside FindActive: an entry past its expires_at is not returned even
// if is_active is still set. "First active match" means oldest by creation
// time; multiple concurrent entries per identity are permitted.
//
// Implementations live in internal/watchlist/store (memory, postgres, and a
// Redis read-through cache wrapping either).
type Store interface {
	// Create inserts a new entry. No deduplication is performed.
	Create(ctx context.Context, entry *Entry) error

	// FindActive returns the first effectively active entry for the
	// identity, or sentinel.ErrNotFound when none exists.
	FindActive(ctx context.Context, nationalID domain.NationalID) (*Entry, error)

	// Deactivate sets is_active=false on all currently-active entries for
	// the identity, restricted to flagType when non-empty. Returns the
	// number of entries deactivated; zero is not an error.
	Deactivate(ctx context.Context, nationalID domain.NationalID, flagType FlagType) (int, error)
}
