// Package store provides application record stores: in-memory for tests and
// development, PostgreSQL for production.
package store

import (
	"context"
	"sync"

	"permitgate/internal/application"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
)

// MemoryStore keeps records in insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []application.Record
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

// Add seeds a record. Test and dev helper; production records come from the
// portal's submission workflow.
func (s *MemoryStore) Add(record application.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

func (s *MemoryStore) FindByNationalID(_ context.Context, nationalID domain.NationalID, excludeID domain.ApplicationID) (*application.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.NationalID != nationalID {
			continue
		}
		if !excludeID.IsNil() && record.ID == excludeID {
			continue
		}
		found := record
		return &found, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *MemoryStore) FindLatestRejection(_ context.Context, nationalID domain.NationalID) (*application.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *application.Record
	for i := range s.records {
		record := s.records[i]
		if record.NationalID != nationalID || record.Status != domain.StatusRejected || record.RejectionDate == nil {
			continue
		}
		if latest == nil || record.RejectionDate.After(*latest.RejectionDate) {
			latest = &record
		}
	}
	if latest == nil {
		return nil, sentinel.ErrNotFound
	}
	found := *latest
	return &found, nil
}

func (s *MemoryStore) FindOverstayRecord(_ context.Context, nationalID domain.NationalID) (*application.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var worst *application.Record
	for i := range s.records {
		record := s.records[i]
		if record.NationalID != nationalID || record.OverstayDays <= 0 {
			continue
		}
		if worst == nil || record.OverstayDays > worst.OverstayDays {
			worst = &record
		}
	}
	if worst == nil {
		return nil, sentinel.ErrNotFound
	}
	found := *worst
	return &found, nil
}

func (s *MemoryStore) FindBySharedPhone(_ context.Context, phoneNumber string) ([]application.PhoneUse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var uses []application.PhoneUse
	for _, record := range s.records {
		if record.PhoneNumber == phoneNumber {
			uses = append(uses, application.PhoneUse{
				NationalID:  record.NationalID,
				PhoneNumber: record.PhoneNumber,
			})
		}
	}
	return uses, nil
}
