// Package store provides watchlist persistence behind the watchlist.Store
// interface: an in-memory implementation for tests and development, a
// PostgreSQL implementation for production, and a Redis read-through cache
// that can wrap either.
package store
