package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

// RedemptionService consumes codes. It delegates the atomic transition to
// the store's single redemption operation and translates store outcomes
// into the business error taxonomy.
type RedemptionService struct {
	Store store.Store
}

// RedeemOutcome is everything a winning redemption produced.
type RedeemOutcome struct {
	Code    domain.InviteCode
	Tenancy domain.Tenancy
}

// Redeem atomically marks the code used and links tenant to property. Of N
// concurrent attempts on one code exactly one returns an outcome; the rest
// get AlreadyUsedError. Any failure leaves the code's status and the
// tenancy tables untouched.
func (s *RedemptionService) Redeem(ctx context.Context, rawCode, tenantID, tenantEmail string) (RedeemOutcome, error) {
	log := slogx.FromContext(ctx)

	if tenantID == "" {
		return RedeemOutcome{}, invalidf("tenant identity is required")
	}
	value := codex.Normalize(rawCode)
	if !codex.Valid(value) {
		return RedeemOutcome{}, ErrCodeNotFound
	}

	res, err := s.Store.InviteCodes().RedeemInviteCode(ctx, store.RedeemParams{
		Code:        value,
		TenantID:    tenantID,
		TenantEmail: tenantEmail,
		Now:         time.Now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return RedeemOutcome{}, ErrCodeNotFound
		case errors.Is(err, store.ErrEmailMismatch):
			return RedeemOutcome{}, ErrEmailMismatch
		case errors.Is(err, store.ErrTenancyExists):
			return RedeemOutcome{}, ErrTenancyExists
		}

		var state *store.StateError
		if errors.As(err, &state) {
			switch state.Status {
			case domain.CodeUsed:
				return RedeemOutcome{}, &AlreadyUsedError{UsedByYou: state.UsedBy == tenantID}
			case domain.CodeExpired:
				return RedeemOutcome{}, ErrCodeExpired
			case domain.CodeRevoked:
				return RedeemOutcome{}, ErrCodeRevoked
			}
		}

		log.Error("redemption failed", slog.Any("error", err))
		return RedeemOutcome{}, err
	}

	log.Info("invite code redeemed",
		slog.String("invite_id", res.Code.ID),
		slog.String("property_id", res.Code.PropertyID),
		slog.String("tenancy_id", res.Tenancy.ID),
	)
	return RedeemOutcome{Code: res.Code, Tenancy: res.Tenancy}, nil
}
