//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"permitgate/internal/watchlist"
	watchliststore "permitgate/internal/watchlist/store"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
	"permitgate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *watchliststore.PostgresStore
	ctx      context.Context
	now      time.Time
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = watchliststore.NewPostgres(s.postgres.DB)
	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "watchlist_entries"))
}

func (s *PostgresStoreSuite) newEntry(nationalID domain.NationalID, flagType watchlist.FlagType) *watchlist.Entry {
	return &watchlist.Entry{
		ID:         uuid.New(),
		NationalID: nationalID,
		FullName:   "Listed Person",
		Reason:     "test reason",
		FlagType:   flagType,
		Severity:   domain.SeverityHigh,
		IsActive:   true,
		CreatedBy:  "officer-1",
		CreatedAt:  s.now,
	}
}

func (s *PostgresStoreSuite) TestCreateAndFindActive() {
	nid := domain.NationalID("PG123456")

	s.Run("unknown identity returns ErrNotFound", func() {
		_, err := s.store.FindActive(s.ctx, nid)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("round-trips all fields", func() {
		entry := s.newEntry(nid, watchlist.FlagFraud)
		expires := s.now.Add(24 * time.Hour)
		entry.ExpiresAt = &expires
		s.Require().NoError(s.store.Create(s.ctx, entry))

		found, err := s.store.FindActive(s.ctx, nid)
		s.Require().NoError(err)
		s.Equal(entry.ID, found.ID)
		s.Equal(entry.NationalID, found.NationalID)
		s.Equal(entry.FullName, found.FullName)
		s.Equal(entry.Reason, found.Reason)
		s.Equal(entry.FlagType, found.FlagType)
		s.Equal(entry.Severity, found.Severity)
		s.True(found.IsActive)
		s.Require().NotNil(found.ExpiresAt)
		s.WithinDuration(expires, *found.ExpiresAt, time.Millisecond)
		s.Equal("officer-1", found.CreatedBy)
	})

	s.Run("oldest active entry wins", func() {
		later := s.newEntry(nid, watchlist.FlagOverstay)
		later.CreatedAt = s.now.Add(time.Hour)
		s.Require().NoError(s.store.Create(s.ctx, later))

		found, err := s.store.FindActive(s.ctx, nid)
		s.Require().NoError(err)
		s.Equal(watchlist.FlagFraud, found.FlagType)
	})
}

func (s *PostgresStoreSuite) TestExpiryRule() {
	nid := domain.NationalID("PG223456")

	entry := s.newEntry(nid, watchlist.FlagFraud)
	expires := s.now.Add(time.Hour)
	entry.ExpiresAt = &expires
	s.Require().NoError(s.store.Create(s.ctx, entry))

	s.Run("active before expiry", func() {
		_, err := s.store.FindActive(s.ctx, nid)
		s.Require().NoError(err)
	})

	s.Run("inactive once the lookup time passes the expiry", func() {
		later := requestcontext.WithTime(context.Background(), s.now.Add(2*time.Hour))
		_, err := s.store.FindActive(later, nid)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("expiry exactly at lookup time counts as expired", func() {
		atExpiry := requestcontext.WithTime(context.Background(), expires)
		_, err := s.store.FindActive(atExpiry, nid)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestDeactivate() {
	nid := domain.NationalID("PG323456")

	s.Require().NoError(s.store.Create(s.ctx, s.newEntry(nid, watchlist.FlagFraud)))
	s.Require().NoError(s.store.Create(s.ctx, s.newEntry(nid, watchlist.FlagOverstay)))

	s.Run("restricted by flag type", func() {
		count, err := s.store.Deactivate(s.ctx, nid, watchlist.FlagFraud)
		s.Require().NoError(err)
		s.Equal(1, count)

		found, err := s.store.FindActive(s.ctx, nid)
		s.Require().NoError(err)
		s.Equal(watchlist.FlagOverstay, found.FlagType)
	})

	s.Run("empty flag type deactivates the rest", func() {
		count, err := s.store.Deactivate(s.ctx, nid, "")
		s.Require().NoError(err)
		s.Equal(1, count)

		_, err = s.store.FindActive(s.ctx, nid)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("repeat deactivation is a no-op", func() {
		count, err := s.store.Deactivate(s.ctx, nid, "")
		s.Require().NoError(err)
		s.Zero(count)
	})
}
