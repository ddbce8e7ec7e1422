//go:build integration

package store_test

import (
	"context"
	"log/slog"
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

// countingStore wraps the memory store to count database reads so cache hits
// are observable.
type countingStore struct {
	watchlist.Store
	finds int
}

func (c *countingStore) FindActive(ctx context.Context, nationalID domain.NationalID) (*watchlist.Entry, error) {
	c.finds++
	return c.Store.FindActive(ctx, nationalID)
}

type CachedStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	inner *countingStore
	store *watchliststore.CachedStore
	ctx   context.Context
	now   time.Time
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.now = time.Now().UTC()
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.inner = &countingStore{Store: watchliststore.NewMemory()}
	s.store = watchliststore.NewCached(s.inner, s.redis.Client, 30*time.Second, slog.New(slog.DiscardHandler), nil)
}

func (s *CachedStoreSuite) newEntry(nationalID domain.NationalID) *watchlist.Entry {
	return &watchlist.Entry{
		ID:         uuid.New(),
		NationalID: nationalID,
		FullName:   "Listed Person",
		Reason:     "test reason",
		FlagType:   watchlist.FlagFraud,
		Severity:   domain.SeverityHigh,
		IsActive:   true,
		CreatedAt:  s.now,
	}
}

func (s *CachedStoreSuite) TestReadThrough() {
	nid := domain.NationalID("RC123456")
	s.Require().NoError(s.store.Create(s.ctx, s.newEntry(nid)))

	first, err := s.store.FindActive(s.ctx, nid)
	s.Require().NoError(err)
	s.Equal(1, s.inner.finds)

	// Second lookup is served from the cache.
	second, err := s.store.FindActive(s.ctx, nid)
	s.Require().NoError(err)
	s.Equal(1, s.inner.finds)
	s.Equal(first.ID, second.ID)
}

func (s *CachedStoreSuite) TestNegativeCaching() {
	nid := domain.NationalID("RC223456")

	_, err := s.store.FindActive(s.ctx, nid)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(1, s.inner.finds)

	_, err = s.store.FindActive(s.ctx, nid)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(1, s.inner.finds)
}

func (s *CachedStoreSuite) TestWriteInvalidation() {
	nid := domain.NationalID("RC323456")

	// Prime a negative cache entry, then add: the next lookup must see the
	// new entry instead of the cached miss.
	_, err := s.store.FindActive(s.ctx, nid)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Create(s.ctx, s.newEntry(nid)))

	found, err := s.store.FindActive(s.ctx, nid)
	s.Require().NoError(err)
	s.Equal(nid, found.NationalID)

	// Deactivation invalidates too.
	count, err := s.store.Deactivate(s.ctx, nid, "")
	s.Require().NoError(err)
	s.Equal(1, count)

	_, err = s.store.FindActive(s.ctx, nid)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

// TestCachedEntryPassingExpiry verifies a cached entry whose expiry falls
// inside the cache TTL stops counting the moment it expires.
func (s *CachedStoreSuite) TestCachedEntryPassingExpiry() {
	nid := domain.NationalID("RC423456")
	entry := s.newEntry(nid)
	expires := s.now.Add(time.Hour)
	entry.ExpiresAt = &expires
	s.Require().NoError(s.store.Create(s.ctx, entry))

	_, err := s.store.FindActive(s.ctx, nid)
	s.Require().NoError(err)

	later := requestcontext.WithTime(context.Background(), s.now.Add(2*time.Hour))
	_, err = s.store.FindActive(later, nid)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
