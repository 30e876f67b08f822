package backend

import (
	"context"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/internal/invites/store"
)

// Local runs every operation against the services over a local store.
// This is the direct-write strategy; with the memory driver underneath it
// doubles as the in-process stand-in.
type Local struct {
	invites  *service.InviteService
	validate *service.ValidationService
	redeem   *service.RedemptionService
	store    store.Store
}

func NewLocal(s store.Store) *Local {
	return &Local{
		invites:  &service.InviteService{Store: s},
		validate: &service.ValidationService{Store: s},
		redeem:   &service.RedemptionService{Store: s},
		store:    s,
	}
}

func (l *Local) Generate(ctx context.Context, p service.GenerateParams) (domain.InviteCode, error) {
	return l.invites.Generate(ctx, p)
}

func (l *Local) GenerateBulk(ctx context.Context, p service.GenerateParams, count int) ([]service.BulkItem, error) {
	return l.invites.GenerateBulk(ctx, p, count)
}

func (l *Local) Validate(ctx context.Context, rawCode, identityEmail string) (service.ValidationResult, error) {
	return l.validate.Validate(ctx, rawCode, identityEmail)
}

func (l *Local) Redeem(ctx context.Context, rawCode, tenantID, tenantEmail string) (service.RedeemOutcome, error) {
	return l.redeem.Redeem(ctx, rawCode, tenantID, tenantEmail)
}

func (l *Local) Revoke(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	return l.invites.Revoke(ctx, codeID, landlordID)
}

func (l *Local) Extend(ctx context.Context, codeID, landlordID string, days int) (domain.InviteCode, error) {
	return l.invites.Extend(ctx, codeID, landlordID, days)
}

func (l *Local) ListByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	return l.invites.ListByLandlord(ctx, landlordID)
}

func (l *Local) ListByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.InviteCode, error) {
	return l.invites.ListByProperty(ctx, propertyID, landlordID)
}

func (l *Local) GetOwned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	return l.invites.GetOwned(ctx, codeID, landlordID)
}

func (l *Local) Purge(ctx context.Context, before time.Time) (int64, error) {
	return l.invites.Purge(ctx, before)
}

func (l *Local) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}
