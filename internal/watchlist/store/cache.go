package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"permitgate/internal/watchlist"
	"permitgate/internal/watchlist/metrics"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
)

// negativeMarker caches "no active entry" so repeat screenings of clean
// identities skip the database too.
const negativeMarker = "__none__"

// CachedStore is a Redis read-through cache in front of a watchlist store.
// Lookups dominate watchlist traffic (one per screening call), writes are
// rare admin actions, so cached lookups use a short TTL and writes invalidate
// eagerly. Cache failures degrade to direct store reads, never to a false
// "clean".
type CachedStore struct {
	inner   watchlist.Store
	redis   *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCached(inner watchlist.Store, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *CachedStore {
	return &CachedStore{inner: inner, redis: client, ttl: ttl, logger: logger, metrics: m}
}

func (s *CachedStore) Create(ctx context.Context, entry *watchlist.Entry) error {
	if err := s.inner.Create(ctx, entry); err != nil {
		return err
	}
	s.invalidate(ctx, entry.NationalID)
	return nil
}

func (s *CachedStore) FindActive(ctx context.Context, nationalID domain.NationalID) (*watchlist.Entry, error) {
	key := cacheKey(nationalID)

	cached, err := s.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == negativeMarker {
			s.metrics.IncCacheHit()
			return nil, sentinel.ErrNotFound
		}
		var entry watchlist.Entry
		if unmarshalErr := json.Unmarshal([]byte(cached), &entry); unmarshalErr == nil {
			// A cached entry can pass its expiry inside the TTL window;
			// re-check and fall through to the store when it has.
			if entry.EffectivelyActive(requestcontext.Now(ctx)) {
				s.metrics.IncCacheHit()
				return &entry, nil
			}
		}
	case errors.Is(err, redis.Nil):
		// miss, fall through
	default:
		if s.logger != nil {
			s.logger.WarnContext(ctx, "watchlist cache read failed, using store",
				"error", err,
			)
		}
	}
	s.metrics.IncCacheMiss()

	entry, err := s.inner.FindActive(ctx, nationalID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.set(ctx, key, negativeMarker)
		}
		return nil, err
	}

	if payload, marshalErr := json.Marshal(entry); marshalErr == nil {
		s.set(ctx, key, string(payload))
	}
	return entry, nil
}

func (s *CachedStore) Deactivate(ctx context.Context, nationalID domain.NationalID, flagType watchlist.FlagType) (int, error) {
	count, err := s.inner.Deactivate(ctx, nationalID, flagType)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, nationalID)
	return count, nil
}

func (s *CachedStore) set(ctx context.Context, key, value string) {
	if err := s.redis.Set(ctx, key, value, s.ttl).Err(); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "watchlist cache write failed", "error", err)
	}
}

func (s *CachedStore) invalidate(ctx context.Context, nationalID domain.NationalID) {
	if err := s.redis.Del(ctx, cacheKey(nationalID)).Err(); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "watchlist cache invalidation failed",
			"error", err,
		)
	}
}

func cacheKey(nationalID domain.NationalID) string {
	return "watchlist:active:" + nationalID.String()
}
