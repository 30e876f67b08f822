package sqlite

import (
	"context"
	"database/sql"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
)

type tenanciesRepo struct {
	db *sql.DB
}

func (r *tenanciesRepo) GetTenancyByID(ctx context.Context, id string) (domain.Tenancy, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tenancyColumns+` FROM tenancies WHERE id = ?`, id)

	t, err := scanTenancy(row)
	if err != nil {
		return domain.Tenancy{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tenanciesRepo) GetLiveTenancy(ctx context.Context, propertyID, tenantID string) (domain.Tenancy, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tenancyColumns+` FROM tenancies
		WHERE property_id = ? AND tenant_id = ? AND status IN ('pending', 'active')`,
		propertyID, tenantID)

	t, err := scanTenancy(row)
	if err != nil {
		return domain.Tenancy{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tenanciesRepo) ListTenanciesByTenant(ctx context.Context, tenantID string) ([]domain.Tenancy, error) {
	return r.list(ctx,
		`SELECT `+tenancyColumns+` FROM tenancies WHERE tenant_id = ? ORDER BY created_at DESC`,
		tenantID)
}

func (r *tenanciesRepo) ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.Tenancy, error) {
	return r.list(ctx,
		`SELECT `+tenancyColumns+` FROM tenancies WHERE property_id = ? ORDER BY created_at DESC`,
		propertyID)
}

func (r *tenanciesRepo) list(ctx context.Context, query string, arg any) ([]domain.Tenancy, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, mapSqliteErr(err)
	}
	defer rows.Close()

	var out []domain.Tenancy
	for rows.Next() {
		t, err := scanTenancy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
