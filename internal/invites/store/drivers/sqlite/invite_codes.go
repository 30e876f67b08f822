package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/idx"
)

type inviteCodesRepo struct {
	db *sql.DB
}

func (r *inviteCodesRepo) CreateInviteCode(ctx context.Context, c domain.InviteCode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invite_codes (id, code, property_id, landlord_id, unit_id,
			restricted_email, status, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Code, c.PropertyID, c.LandlordID, mapStringNull(c.UnitID),
		mapStringNull(c.RestrictedEmail), string(c.Status), c.ExpiresAt,
		c.CreatedAt, c.UpdatedAt,
	)
	return mapSqliteErr(err)
}

func (r *inviteCodesRepo) GetInviteCodeByID(ctx context.Context, id string) (domain.InviteCode, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteCodeColumns+` FROM invite_codes WHERE id = ?`, id)

	c, err := scanInviteCode(row)
	if err != nil {
		return domain.InviteCode{}, mapNotFound(err)
	}
	return c, nil
}

// GetInviteCodeByValue prefers the active record when a value has
// historical terminal duplicates.
func (r *inviteCodesRepo) GetInviteCodeByValue(ctx context.Context, code string) (domain.InviteCode, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteCodeColumns+` FROM invite_codes WHERE code = ?
		ORDER BY (status = 'active') DESC, created_at DESC LIMIT 1`, code)

	c, err := scanInviteCode(row)
	if err != nil {
		return domain.InviteCode{}, mapNotFound(err)
	}
	return c, nil
}

func (r *inviteCodesRepo) ListInviteCodesByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	return r.list(ctx,
		`SELECT `+inviteCodeColumns+` FROM invite_codes WHERE landlord_id = ? ORDER BY created_at DESC`,
		landlordID)
}

func (r *inviteCodesRepo) ListInviteCodesByProperty(ctx context.Context, propertyID string) ([]domain.InviteCode, error) {
	return r.list(ctx,
		`SELECT `+inviteCodeColumns+` FROM invite_codes WHERE property_id = ? ORDER BY created_at DESC`,
		propertyID)
}

func (r *inviteCodesRepo) list(ctx context.Context, query string, arg any) ([]domain.InviteCode, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, mapSqliteErr(err)
	}
	defer rows.Close()

	var out []domain.InviteCode
	for rows.Next() {
		c, err := scanInviteCode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MarkInviteCodeExpired is the lazy expiry write. The status guard makes
// it idempotent and keeps it from touching terminal codes.
func (r *inviteCodesRepo) MarkInviteCodeExpired(ctx context.Context, id string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes SET status = 'expired', updated_at = ?
		WHERE id = ? AND status = 'active' AND expires_at <= ?`,
		now, id, now,
	)
	return mapSqliteErr(err)
}

func (r *inviteCodesRepo) RevokeInviteCode(ctx context.Context, id string, now time.Time) (domain.InviteCode, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes SET status = 'revoked', updated_at = ?
		WHERE id = ? AND status = 'active' AND expires_at > ?`,
		now, id, now,
	)
	if err != nil {
		return domain.InviteCode{}, mapSqliteErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InviteCode{}, err
	}
	if affected == 0 {
		return domain.InviteCode{}, r.stateError(ctx, id, now)
	}

	return r.GetInviteCodeByID(ctx, id)
}

func (r *inviteCodesRepo) ExtendInviteCode(ctx context.Context, id string, newExpiry, now time.Time) (domain.InviteCode, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes SET expires_at = ?, updated_at = ?
		WHERE id = ? AND status = 'active' AND expires_at > ?`,
		newExpiry, now, id, now,
	)
	if err != nil {
		return domain.InviteCode{}, mapSqliteErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InviteCode{}, err
	}
	if affected == 0 {
		return domain.InviteCode{}, r.stateError(ctx, id, now)
	}

	return r.GetInviteCodeByID(ctx, id)
}

// stateError re-reads a code whose guarded update matched no rows and
// reports the state that blocked it. An active record past its deadline
// reports as expired even before the lazy write has happened.
func (r *inviteCodesRepo) stateError(ctx context.Context, id string, now time.Time) error {
	c, err := r.GetInviteCodeByID(ctx, id)
	if err != nil {
		return err
	}

	status := c.Status
	if status == domain.CodeActive && c.ExpiredAt(now) {
		status = domain.CodeExpired
	}
	return &store.StateError{Status: status, UsedBy: c.UsedBy}
}

// RedeemInviteCode performs the one state-changing transition of the
// invite lifecycle inside a single transaction. The UPDATE's status and
// deadline guard is the compare-and-swap that serializes concurrent
// attempts: whichever transaction commits the row-count-1 update wins, and
// every later attempt re-reads a used code.
func (r *inviteCodesRepo) RedeemInviteCode(ctx context.Context, p store.RedeemParams) (store.RedeemResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return store.RedeemResult{}, mapSqliteErr(err)
	}
	defer func() {
		_ = tx.Rollback() // safe after commit
	}()

	// Re-validate inside the transaction; nothing from an earlier
	// validation call is trusted.
	row := tx.QueryRowContext(ctx, `
		SELECT `+inviteCodeColumns+` FROM invite_codes WHERE code = ?
		ORDER BY (status = 'active') DESC, created_at DESC LIMIT 1`, p.Code)
	c, err := scanInviteCode(row)
	if err != nil {
		return store.RedeemResult{}, mapNotFound(err)
	}

	if c.Status != domain.CodeActive {
		return store.RedeemResult{}, &store.StateError{Status: c.Status, UsedBy: c.UsedBy}
	}
	if c.ExpiredAt(p.Now) {
		return store.RedeemResult{}, &store.StateError{Status: domain.CodeExpired}
	}
	if !c.RedeemableBy(p.TenantEmail) {
		return store.RedeemResult{}, store.ErrEmailMismatch
	}

	var existing string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM tenancies
		WHERE property_id = ? AND tenant_id = ? AND status IN ('pending', 'active')`,
		c.PropertyID, p.TenantID,
	).Scan(&existing)
	if err == nil {
		return store.RedeemResult{}, store.ErrTenancyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.RedeemResult{}, mapSqliteErr(err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE invite_codes SET status = 'used', used_at = ?, used_by = ?, updated_at = ?
		WHERE id = ? AND status = 'active' AND expires_at > ?`,
		p.Now, p.TenantID, p.Now, c.ID, p.Now,
	)
	if err != nil {
		return store.RedeemResult{}, mapSqliteErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return store.RedeemResult{}, err
	}
	if affected == 0 {
		// Lost the race between our read and write.
		return store.RedeemResult{}, &store.StateError{Status: domain.CodeUsed}
	}

	t := domain.Tenancy{
		ID:           idx.New().String(),
		PropertyID:   c.PropertyID,
		UnitID:       c.UnitID,
		TenantID:     p.TenantID,
		InviteCodeID: c.ID,
		Status:       domain.TenancyPending,
		StartDate:    p.Now,
		CreatedAt:    p.Now,
		UpdatedAt:    p.Now,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tenancies (id, property_id, unit_id, tenant_id, invite_code_id,
			status, start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.PropertyID, mapStringNull(t.UnitID), t.TenantID, t.InviteCodeID,
		string(t.Status), t.StartDate, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return store.RedeemResult{}, mapSqliteErr(err)
	}

	// Denormalized pointer for fast "my property" reads on tenant screens.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tenants (id, email, current_property_id, current_tenancy_id, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			current_property_id = excluded.current_property_id,
			current_tenancy_id = excluded.current_tenancy_id,
			updated_at = excluded.updated_at`,
		p.TenantID, p.TenantEmail, t.PropertyID, t.ID, p.Now,
	)
	if err != nil {
		return store.RedeemResult{}, mapSqliteErr(err)
	}

	if err := tx.Commit(); err != nil {
		return store.RedeemResult{}, mapSqliteErr(err)
	}

	c.Status = domain.CodeUsed
	c.UsedAt = &p.Now
	c.UsedBy = p.TenantID
	c.UpdatedAt = p.Now
	return store.RedeemResult{Code: c, Tenancy: t}, nil
}

func (r *inviteCodesRepo) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invite_codes SET status = 'expired', updated_at = ?
		WHERE status = 'active' AND expires_at <= ?`,
		now, now,
	)
	if err != nil {
		return 0, mapSqliteErr(err)
	}
	return res.RowsAffected()
}

func (r *inviteCodesRepo) PurgeTerminal(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM invite_codes
		WHERE status != 'active' AND updated_at < ?
		AND id NOT IN (SELECT invite_code_id FROM tenancies)`,
		before,
	)
	if err != nil {
		return 0, mapSqliteErr(err)
	}
	return res.RowsAffected()
}
