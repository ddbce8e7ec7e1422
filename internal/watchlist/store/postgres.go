package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"permitgate/internal/watchlist"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
)

// PostgresStore persists watchlist entries in PostgreSQL.
// This store is pure I/O; the expiry rule lives in the queries so that the
// database and the memory store agree on what "effectively active" means.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed watchlist store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, entry *watchlist.Entry) error {
	query := `
		INSERT INTO watchlist_entries
			(id, national_id, full_name, reason, flag_type, severity, is_active, expires_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.NationalID.String(),
		entry.FullName,
		entry.Reason,
		entry.FlagType.String(),
		entry.Severity.String(),
		entry.IsActive,
		entry.ExpiresAt,
		nullIfEmpty(entry.CreatedBy),
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindActive(ctx context.Context, nationalID domain.NationalID) (*watchlist.Entry, error) {
	now := requestcontext.Now(ctx)
	query := `
		SELECT id, national_id, full_name, reason, flag_type, severity, is_active, expires_at, created_by, created_at
		FROM watchlist_entries
		WHERE national_id = $1
		  AND is_active
		  AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY created_at ASC
		LIMIT 1
	`
	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, nationalID.String(), now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find active watchlist entry: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) Deactivate(ctx context.Context, nationalID domain.NationalID, flagType watchlist.FlagType) (int, error) {
	query := `
		UPDATE watchlist_entries
		SET is_active = FALSE
		WHERE national_id = $1
		  AND is_active
		  AND ($2 = '' OR flag_type = $2)
	`
	result, err := s.db.ExecContext(ctx, query, nationalID.String(), flagType.String())
	if err != nil {
		return 0, fmt.Errorf("deactivate watchlist entries: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deactivate watchlist entries: %w", err)
	}
	return int(affected), nil
}

func scanEntry(row *sql.Row) (*watchlist.Entry, error) {
	var (
		entry      watchlist.Entry
		nationalID string
		flagType   string
		severity   string
		createdBy  sql.NullString
		expiresAt  sql.NullTime
	)
	err := row.Scan(
		&entry.ID,
		&nationalID,
		&entry.FullName,
		&entry.Reason,
		&flagType,
		&severity,
		&entry.IsActive,
		&expiresAt,
		&createdBy,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.NationalID = domain.NationalID(nationalID)
	entry.FlagType = watchlist.FlagType(flagType)
	entry.Severity = domain.Severity(severity)
	if expiresAt.Valid {
		t := expiresAt.Time
		entry.ExpiresAt = &t
	}
	if createdBy.Valid {
		entry.CreatedBy = createdBy.String
	}
	return &entry, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
