// Package adapters bridges the screening engine's narrow source ports to the
// concrete watchlist and application stores.
package adapters

import (
	"context"

	"permitgate/internal/application"
	"permitgate/internal/screening"
	"permitgate/internal/watchlist"
	"permitgate/pkg/domain"
)

// WatchlistAdapter adapts a watchlist store to screening.WatchlistSource.
type WatchlistAdapter struct {
	store watchlist.Store
}

func NewWatchlistAdapter(store watchlist.Store) *WatchlistAdapter {
	return &WatchlistAdapter{store: store}
}

func (a *WatchlistAdapter) FindActiveEntry(ctx context.Context, nationalID domain.NationalID) (*screening.WatchlistHit, error) {
	entry, err := a.store.FindActive(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	return &screening.WatchlistHit{
		FlagType: entry.FlagType.String(),
		Reason:   entry.Reason,
		Severity: entry.Severity,
	}, nil
}

// ApplicationAdapter adapts an application store to
// screening.ApplicationSource.
type ApplicationAdapter struct {
	store application.Store
}

func NewApplicationAdapter(store application.Store) *ApplicationAdapter {
	return &ApplicationAdapter{store: store}
}

func (a *ApplicationAdapter) FindDuplicate(ctx context.Context, nationalID domain.NationalID, excludeID domain.ApplicationID) (*screening.DuplicateRecord, error) {
	record, err := a.store.FindByNationalID(ctx, nationalID, excludeID)
	if err != nil {
		return nil, err
	}
	return &screening.DuplicateRecord{
		ReferenceNumber: record.ReferenceNumber,
		Status:          record.Status,
	}, nil
}

func (a *ApplicationAdapter) FindLatestRejection(ctx context.Context, nationalID domain.NationalID) (*screening.RejectionRecord, error) {
	record, err := a.store.FindLatestRejection(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	rejection := &screening.RejectionRecord{ReferenceNumber: record.ReferenceNumber}
	if record.RejectionDate != nil {
		rejection.RejectionDate = *record.RejectionDate
	}
	return rejection, nil
}

func (a *ApplicationAdapter) FindOverstayRecord(ctx context.Context, nationalID domain.NationalID) (*screening.OverstayRecord, error) {
	record, err := a.store.FindOverstayRecord(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	return &screening.OverstayRecord{Days: record.OverstayDays}, nil
}

func (a *ApplicationAdapter) CountDistinctIdentitiesByPhone(ctx context.Context, phoneNumber string) (int, error) {
	uses, err := a.store.FindBySharedPhone(ctx, phoneNumber)
	if err != nil {
		return 0, err
	}
	distinct := make(map[domain.NationalID]struct{}, len(uses))
	for _, use := range uses {
		distinct[use.NationalID] = struct{}{}
	}
	return len(distinct), nil
}
