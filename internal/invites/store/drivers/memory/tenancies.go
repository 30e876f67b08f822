package memory

import (
	"context"
	"sort"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
)

type tenanciesRepo struct {
	s *Store
}

func (r *tenanciesRepo) GetTenancyByID(ctx context.Context, id string) (domain.Tenancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tenancies[id]
	if !ok {
		return domain.Tenancy{}, store.ErrNotFound
	}
	return t, nil
}

func (r *tenanciesRepo) GetLiveTenancy(ctx context.Context, propertyID, tenantID string) (domain.Tenancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tenancies {
		if t.PropertyID == propertyID && t.TenantID == tenantID && t.Live() {
			return t, nil
		}
	}
	return domain.Tenancy{}, store.ErrNotFound
}

func (r *tenanciesRepo) ListTenanciesByTenant(ctx context.Context, tenantID string) ([]domain.Tenancy, error) {
	return r.list(func(t domain.Tenancy) bool { return t.TenantID == tenantID }), nil
}

func (r *tenanciesRepo) ListTenanciesByProperty(ctx context.Context, propertyID string) ([]domain.Tenancy, error) {
	return r.list(func(t domain.Tenancy) bool { return t.PropertyID == propertyID }), nil
}

func (r *tenanciesRepo) list(keep func(domain.Tenancy) bool) []domain.Tenancy {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Tenancy
	for _, t := range r.s.tenancies {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
