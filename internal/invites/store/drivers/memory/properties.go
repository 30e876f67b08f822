package memory

import (
	"context"
	"sort"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
)

type propertiesRepo struct {
	s *Store
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[p.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.properties[p.ID] = p
	return nil
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.properties[id]
	if !ok {
		return domain.Property{}, store.ErrNotFound
	}
	return p, nil
}

func (r *propertiesRepo) ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Property
	for _, p := range r.s.properties {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
