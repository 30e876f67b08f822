package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection serializes writers, which sqlite wants anyway,
	// and keeps ":memory:" databases coherent across the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) InviteCodes() store.InviteCodes { return &inviteCodesRepo{db: s.db} }
func (s *Store) Tenancies() store.Tenancies     { return &tenanciesRepo{db: s.db} }
func (s *Store) Properties() store.Properties   { return &propertiesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return mapSqliteErr(err)
}

// mapSqliteErr translates driver-level faults into store sentinels:
// unique-constraint hits become ErrAlreadyExists, busy/locked become the
// retryable ErrUnavailable.
func mapSqliteErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite3.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

const inviteCodeColumns = `id, code, property_id, landlord_id, unit_id, restricted_email,
	status, expires_at, used_at, used_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInviteCode(row rowScanner) (domain.InviteCode, error) {
	var (
		c               domain.InviteCode
		unitID          sql.NullString
		restrictedEmail sql.NullString
		usedAt          sql.NullTime
		usedBy          sql.NullString
		status          string
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.PropertyID, &c.LandlordID, &unitID, &restrictedEmail,
		&status, &c.ExpiresAt, &usedAt, &usedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.InviteCode{}, err
	}

	c.UnitID = mapNullString(unitID)
	c.RestrictedEmail = mapNullString(restrictedEmail)
	c.Status = domain.CodeStatus(status)
	c.UsedAt = mapNullTimePtr(usedAt)
	c.UsedBy = mapNullString(usedBy)
	return c, nil
}

const tenancyColumns = `id, property_id, unit_id, tenant_id, invite_code_id,
	status, start_date, end_date, created_at, updated_at`

func scanTenancy(row rowScanner) (domain.Tenancy, error) {
	var (
		t       domain.Tenancy
		unitID  sql.NullString
		endDate sql.NullTime
		status  string
	)
	err := row.Scan(
		&t.ID, &t.PropertyID, &unitID, &t.TenantID, &t.InviteCodeID,
		&status, &t.StartDate, &endDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Tenancy{}, err
	}

	t.UnitID = mapNullString(unitID)
	t.Status = domain.TenancyStatus(status)
	t.EndDate = mapNullTimePtr(endDate)
	return t, nil
}
