package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

// Failover tries each member in order, moving to the next only on
// infrastructure faults. A business outcome from any member is final: an
// expired code on the primary is expired, not a reason to ask elsewhere.
type Failover struct {
	members []CodeStore
}

func NewFailover(members ...CodeStore) *Failover {
	return &Failover{members: members}
}

// each runs op against members in order until one returns a non-infra
// result. The last infra error surfaces if every member is down.
func each[T any](ctx context.Context, f *Failover, op func(CodeStore) (T, error)) (T, error) {
	log := slogx.FromContext(ctx)

	var (
		v   T
		err error
	)
	for i, m := range f.members {
		v, err = op(m)
		if !infrastructure(err) {
			return v, err
		}
		if i < len(f.members)-1 {
			log.Warn("backend unavailable, failing over",
				slog.Int("member", i),
				slog.Any("error", err),
			)
		}
	}
	return v, err
}

func (f *Failover) Generate(ctx context.Context, p service.GenerateParams) (domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) (domain.InviteCode, error) {
		return m.Generate(ctx, p)
	})
}

func (f *Failover) GenerateBulk(ctx context.Context, p service.GenerateParams, count int) ([]service.BulkItem, error) {
	return each(ctx, f, func(m CodeStore) ([]service.BulkItem, error) {
		return m.GenerateBulk(ctx, p, count)
	})
}

func (f *Failover) Validate(ctx context.Context, rawCode, identityEmail string) (service.ValidationResult, error) {
	return each(ctx, f, func(m CodeStore) (service.ValidationResult, error) {
		return m.Validate(ctx, rawCode, identityEmail)
	})
}

func (f *Failover) Redeem(ctx context.Context, rawCode, tenantID, tenantEmail string) (service.RedeemOutcome, error) {
	return each(ctx, f, func(m CodeStore) (service.RedeemOutcome, error) {
		return m.Redeem(ctx, rawCode, tenantID, tenantEmail)
	})
}

func (f *Failover) Revoke(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) (domain.InviteCode, error) {
		return m.Revoke(ctx, codeID, landlordID)
	})
}

func (f *Failover) Extend(ctx context.Context, codeID, landlordID string, days int) (domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) (domain.InviteCode, error) {
		return m.Extend(ctx, codeID, landlordID, days)
	})
}

func (f *Failover) ListByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) ([]domain.InviteCode, error) {
		return m.ListByLandlord(ctx, landlordID)
	})
}

func (f *Failover) ListByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) ([]domain.InviteCode, error) {
		return m.ListByProperty(ctx, propertyID, landlordID)
	})
}

func (f *Failover) GetOwned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	return each(ctx, f, func(m CodeStore) (domain.InviteCode, error) {
		return m.GetOwned(ctx, codeID, landlordID)
	})
}

func (f *Failover) Purge(ctx context.Context, before time.Time) (int64, error) {
	return each(ctx, f, func(m CodeStore) (int64, error) {
		return m.Purge(ctx, before)
	})
}

// Ping succeeds if any member can serve.
func (f *Failover) Ping(ctx context.Context) error {
	var err error
	for _, m := range f.members {
		if err = m.Ping(ctx); err == nil {
			return nil
		}
	}
	return err
}
