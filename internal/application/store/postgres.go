package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"permitgate/internal/application"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
)

// PostgresStore reads application records from the portal's PostgreSQL
// database. Screening never writes to this table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed application store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `id, national_id, phone_number, reference_number, status, created_at, rejection_date, overstay_days`

func (s *PostgresStore) FindByNationalID(ctx context.Context, nationalID domain.NationalID, excludeID domain.ApplicationID) (*application.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM applications
		WHERE national_id = $1
		  AND ($2::uuid IS NULL OR id <> $2)
		ORDER BY created_at ASC
		LIMIT 1
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, nationalID.String(), nullableID(excludeID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by national id: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) FindLatestRejection(ctx context.Context, nationalID domain.NationalID) (*application.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM applications
		WHERE national_id = $1
		  AND status = 'REJECTED'
		  AND rejection_date IS NOT NULL
		ORDER BY rejection_date DESC
		LIMIT 1
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, nationalID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find latest rejection: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) FindOverstayRecord(ctx context.Context, nationalID domain.NationalID) (*application.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM applications
		WHERE national_id = $1
		  AND overstay_days > 0
		ORDER BY overstay_days DESC
		LIMIT 1
	`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, nationalID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find overstay record: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) FindBySharedPhone(ctx context.Context, phoneNumber string) ([]application.PhoneUse, error) {
	query := `
		SELECT national_id, phone_number
		FROM applications
		WHERE phone_number = $1
	`
	rows, err := s.db.QueryContext(ctx, query, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("find applications by shared phone: %w", err)
	}
	defer rows.Close()

	var uses []application.PhoneUse
	for rows.Next() {
		var use application.PhoneUse
		var nationalID string
		if err := rows.Scan(&nationalID, &use.PhoneNumber); err != nil {
			return nil, fmt.Errorf("scan shared phone row: %w", err)
		}
		use.NationalID = domain.NationalID(nationalID)
		uses = append(uses, use)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shared phone rows: %w", err)
	}
	return uses, nil
}

func scanRecord(row *sql.Row) (*application.Record, error) {
	var (
		record        application.Record
		id            uuid.UUID
		nationalID    string
		status        string
		rejectionDate sql.NullTime
		overstayDays  sql.NullInt64
	)
	err := row.Scan(
		&id,
		&nationalID,
		&record.PhoneNumber,
		&record.ReferenceNumber,
		&status,
		&record.CreatedAt,
		&rejectionDate,
		&overstayDays,
	)
	if err != nil {
		return nil, err
	}
	record.ID = domain.ApplicationID(id)
	record.NationalID = domain.NationalID(nationalID)
	record.Status = domain.ApplicationStatus(status)
	if rejectionDate.Valid {
		t := rejectionDate.Time
		record.RejectionDate = &t
	}
	if overstayDays.Valid {
		record.OverstayDays = int(overstayDays.Int64)
	}
	return &record, nil
}

func nullableID(id domain.ApplicationID) any {
	if id.IsNil() {
		return nil
	}
	return uuid.UUID(id)
}
