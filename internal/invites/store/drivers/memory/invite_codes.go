package memory

import (
	"context"
	"sort"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/idx"
)

type inviteCodesRepo struct {
	s *Store
}

func (r *inviteCodesRepo) CreateInviteCode(ctx context.Context, c domain.InviteCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inviteCodes[c.ID]; ok {
		return store.ErrAlreadyExists
	}
	// Mirrors the partial unique index: only one active record per value.
	for _, other := range r.s.inviteCodes {
		if other.Code == c.Code && other.Status == domain.CodeActive {
			return store.ErrAlreadyExists
		}
	}

	r.s.inviteCodes[c.ID] = c
	return nil
}

func (r *inviteCodesRepo) GetInviteCodeByID(ctx context.Context, id string) (domain.InviteCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.inviteCodes[id]
	if !ok {
		return domain.InviteCode{}, store.ErrNotFound
	}
	return c, nil
}

func (r *inviteCodesRepo) GetInviteCodeByValue(ctx context.Context, code string) (domain.InviteCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.byValueLocked(code)
}

// byValueLocked prefers the active record over terminal duplicates, and
// among terminal ones the most recently created. Callers hold s.mu.
func (r *inviteCodesRepo) byValueLocked(code string) (domain.InviteCode, error) {
	var (
		best  domain.InviteCode
		found bool
	)
	for _, c := range r.s.inviteCodes {
		if c.Code != code {
			continue
		}
		if !found || betterMatch(c, best) {
			best, found = c, true
		}
	}
	if !found {
		return domain.InviteCode{}, store.ErrNotFound
	}
	return best, nil
}

func betterMatch(a, b domain.InviteCode) bool {
	if (a.Status == domain.CodeActive) != (b.Status == domain.CodeActive) {
		return a.Status == domain.CodeActive
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (r *inviteCodesRepo) ListInviteCodesByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	return r.list(func(c domain.InviteCode) bool { return c.LandlordID == landlordID }), nil
}

func (r *inviteCodesRepo) ListInviteCodesByProperty(ctx context.Context, propertyID string) ([]domain.InviteCode, error) {
	return r.list(func(c domain.InviteCode) bool { return c.PropertyID == propertyID }), nil
}

func (r *inviteCodesRepo) list(keep func(domain.InviteCode) bool) []domain.InviteCode {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.InviteCode
	for _, c := range r.s.inviteCodes {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *inviteCodesRepo) MarkInviteCodeExpired(ctx context.Context, id string, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.inviteCodes[id]
	if !ok {
		return store.ErrNotFound
	}
	if c.Status != domain.CodeActive || !c.ExpiredAt(now) {
		return nil
	}

	c.Status = domain.CodeExpired
	c.UpdatedAt = now
	r.s.inviteCodes[id] = c
	return nil
}

func (r *inviteCodesRepo) RevokeInviteCode(ctx context.Context, id string, now time.Time) (domain.InviteCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.inviteCodes[id]
	if !ok {
		return domain.InviteCode{}, store.ErrNotFound
	}
	if err := activeGate(c, now); err != nil {
		return domain.InviteCode{}, err
	}

	c.Status = domain.CodeRevoked
	c.UpdatedAt = now
	r.s.inviteCodes[id] = c
	return c, nil
}

func (r *inviteCodesRepo) ExtendInviteCode(ctx context.Context, id string, newExpiry, now time.Time) (domain.InviteCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.inviteCodes[id]
	if !ok {
		return domain.InviteCode{}, store.ErrNotFound
	}
	if err := activeGate(c, now); err != nil {
		return domain.InviteCode{}, err
	}

	c.ExpiresAt = newExpiry
	c.UpdatedAt = now
	r.s.inviteCodes[id] = c
	return c, nil
}

// activeGate reports the state blocking a lifecycle write on a
// non-redeemable code. A past-deadline active record counts as expired.
func activeGate(c domain.InviteCode, now time.Time) error {
	if c.Status != domain.CodeActive {
		return &store.StateError{Status: c.Status, UsedBy: c.UsedBy}
	}
	if c.ExpiredAt(now) {
		return &store.StateError{Status: domain.CodeExpired}
	}
	return nil
}

func (r *inviteCodesRepo) RedeemInviteCode(ctx context.Context, p store.RedeemParams) (store.RedeemResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, err := r.byValueLocked(p.Code)
	if err != nil {
		return store.RedeemResult{}, err
	}
	if err := activeGate(c, p.Now); err != nil {
		return store.RedeemResult{}, err
	}
	if !c.RedeemableBy(p.TenantEmail) {
		return store.RedeemResult{}, store.ErrEmailMismatch
	}
	for _, t := range r.s.tenancies {
		if t.PropertyID == c.PropertyID && t.TenantID == p.TenantID && t.Live() {
			return store.RedeemResult{}, store.ErrTenancyExists
		}
	}

	c.Status = domain.CodeUsed
	c.UsedAt = &p.Now
	c.UsedBy = p.TenantID
	c.UpdatedAt = p.Now
	r.s.inviteCodes[c.ID] = c

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
	r.s.tenancies[t.ID] = t

	r.s.tenants[p.TenantID] = domain.Tenant{
		ID:                p.TenantID,
		Email:             p.TenantEmail,
		CurrentPropertyID: t.PropertyID,
		CurrentTenancyID:  t.ID,
		UpdatedAt:         p.Now,
	}

	return store.RedeemResult{Code: c, Tenancy: t}, nil
}

func (r *inviteCodesRepo) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, c := range r.s.inviteCodes {
		if c.Status == domain.CodeActive && c.ExpiredAt(now) {
			c.Status = domain.CodeExpired
			c.UpdatedAt = now
			r.s.inviteCodes[id] = c
			n++
		}
	}
	return n, nil
}

func (r *inviteCodesRepo) PurgeTerminal(ctx context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	referenced := make(map[string]struct{}, len(r.s.tenancies))
	for _, t := range r.s.tenancies {
		referenced[t.InviteCodeID] = struct{}{}
	}

	var n int64
	for id, c := range r.s.inviteCodes {
		if c.Status == domain.CodeActive || !c.UpdatedAt.Before(before) {
			continue
		}
		if _, ok := referenced[id]; ok {
			continue
		}
		delete(r.s.inviteCodes, id)
		n++
	}
	return n, nil
}
