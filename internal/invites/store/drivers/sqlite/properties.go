package sqlite

import (
	"context"
	"database/sql"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
)

type propertiesRepo struct {
	db *sql.DB
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (id, landlord_id, name, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.LandlordID, p.Name, p.Address, p.CreatedAt, p.UpdatedAt,
	)
	return mapSqliteErr(err)
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, landlord_id, name, address, created_at, updated_at
		FROM properties WHERE id = ?`, id)

	var p domain.Property
	err := row.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return p, nil
}

func (r *propertiesRepo) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, landlord_id, name, address, created_at, updated_at
		FROM properties WHERE landlord_id = ? ORDER BY created_at DESC`,
		landlordID)
	if err != nil {
		return nil, mapSqliteErr(err)
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
