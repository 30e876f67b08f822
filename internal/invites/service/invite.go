package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/lodgeline/lodgeline/pkg/idx"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

const (
	// DefaultExpirationDays applies when a mint request leaves the horizon
	// unset.
	DefaultExpirationDays = 7

	// MaxBulkCount bounds one bulk mint request.
	MaxBulkCount = 50

	// maxMintAttempts caps the redraw loop. The pre-check makes collisions
	// rare; the insert's unique constraint makes them harmless.
	maxMintAttempts = 5
)

// InviteService issues and administers invite codes. Redemption lives in
// RedemptionService; read-only checks in ValidationService.
type InviteService struct {
	Store store.Store
}

// GenerateParams describes one code to mint.
type GenerateParams struct {
	PropertyID      string
	LandlordID      string
	UnitID          string
	RestrictedEmail string
	ExpirationDays  int // 0 means DefaultExpirationDays
}

// Generate mints one active invite code for a property the landlord owns.
func (s *InviteService) Generate(ctx context.Context, p GenerateParams) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request shape.
	if p.PropertyID == "" {
		return domain.InviteCode{}, invalidf("propertyId is required")
	}
	if p.LandlordID == "" {
		return domain.InviteCode{}, invalidf("landlordId is required")
	}
	days := p.ExpirationDays
	if days == 0 {
		days = DefaultExpirationDays
	}
	if days < 0 {
		return domain.InviteCode{}, invalidf("expirationDays must be positive")
	}

	// 2. The property must exist and belong to the issuing landlord.
	prop, err := s.Store.Properties().GetPropertyByID(ctx, p.PropertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InviteCode{}, ErrPropertyNotFound
		}
		log.Error("failed to fetch property", slog.Any("error", err))
		return domain.InviteCode{}, err
	}
	if prop.LandlordID != p.LandlordID {
		log.Warn("mint attempt against another landlord's property",
			slog.String("property_id", p.PropertyID),
			slog.String("landlord_id", p.LandlordID),
		)
		return domain.InviteCode{}, ErrPropertyNotFound
	}

	// 3. Draw, pre-check, insert. The pre-check only reduces retries; the
	// partial unique index on active codes is the correctness guarantee,
	// so a lost race surfaces as ErrAlreadyExists and we redraw.
	now := time.Now().UTC()
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		value := codex.Draw()

		existing, err := s.Store.InviteCodes().GetInviteCodeByValue(ctx, value)
		if err == nil && existing.Status == domain.CodeActive {
			continue
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed collision pre-check", slog.Any("error", err))
			return domain.InviteCode{}, err
		}

		c := domain.InviteCode{
			ID:              idx.New().String(),
			Code:            value,
			PropertyID:      p.PropertyID,
			LandlordID:      p.LandlordID,
			UnitID:          p.UnitID,
			RestrictedEmail: p.RestrictedEmail,
			Status:          domain.CodeActive,
			ExpiresAt:       now.AddDate(0, 0, days),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		err = s.Store.InviteCodes().CreateInviteCode(ctx, c)
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Debug("invite code collision, redrawing", slog.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			log.Error("failed to insert invite code", slog.Any("error", err))
			return domain.InviteCode{}, err
		}

		log.Info("invite code minted",
			slog.String("invite_id", c.ID),
			slog.String("property_id", c.PropertyID),
		)
		return c, nil
	}

	log.Error("exhausted invite code draw attempts",
		slog.Int("attempts", maxMintAttempts),
	)
	return domain.InviteCode{}, ErrCodeSpaceExhausted
}

// BulkItem is the per-position outcome of a bulk mint. Exactly one of
// Code or Err is set.
type BulkItem struct {
	Code *domain.InviteCode
	Err  error
}

// GenerateBulk mints up to MaxBulkCount codes with shared parameters.
// Items succeed or fail independently; a failed draw does not roll back
// earlier successes.
func (s *InviteService) GenerateBulk(ctx context.Context, p GenerateParams, count int) ([]BulkItem, error) {
	if count < 1 || count > MaxBulkCount {
		return nil, invalidf("count must be between 1 and %d", MaxBulkCount)
	}

	items := make([]BulkItem, count)
	for i := range items {
		c, err := s.Generate(ctx, p)
		if err != nil {
			if IsBusinessError(err) && !errors.Is(err, ErrCodeSpaceExhausted) {
				// Shared parameters are bad; every item would fail the
				// same way.
				return nil, err
			}
			items[i] = BulkItem{Err: err}
			continue
		}
		items[i] = BulkItem{Code: &c}
	}
	return items, nil
}

// Revoke invalidates an active code the landlord owns. Terminal codes stay
// as they are: a used code cannot be un-used by revoking it.
func (s *InviteService) Revoke(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.owned(ctx, codeID, landlordID); err != nil {
		return domain.InviteCode{}, err
	}

	c, err := s.Store.InviteCodes().RevokeInviteCode(ctx, codeID, time.Now().UTC())
	if err != nil {
		return domain.InviteCode{}, mapStateErr(err, landlordID)
	}

	log.Info("invite code revoked", slog.String("invite_id", c.ID))
	return c, nil
}

// Extend pushes an active code's deadline out by the given number of days,
// counted from the later of now and the current deadline so an extension
// never shortens it.
func (s *InviteService) Extend(ctx context.Context, codeID, landlordID string, days int) (domain.InviteCode, error) {
	log := slogx.FromContext(ctx)

	if days <= 0 {
		return domain.InviteCode{}, invalidf("days must be positive")
	}

	c, err := s.owned(ctx, codeID, landlordID)
	if err != nil {
		return domain.InviteCode{}, err
	}

	now := time.Now().UTC()
	base := c.ExpiresAt
	if base.Before(now) {
		base = now
	}

	c, err = s.Store.InviteCodes().ExtendInviteCode(ctx, codeID, base.AddDate(0, 0, days), now)
	if err != nil {
		return domain.InviteCode{}, mapStateErr(err, landlordID)
	}

	log.Info("invite code extended",
		slog.String("invite_id", c.ID),
		slog.Time("expires_at", c.ExpiresAt),
	)
	return c, nil
}

// ListByLandlord returns every code the landlord has issued.
func (s *InviteService) ListByLandlord(ctx context.Context, landlordID string) ([]domain.InviteCode, error) {
	if landlordID == "" {
		return nil, invalidf("landlordId is required")
	}
	return s.Store.InviteCodes().ListInviteCodesByLandlord(ctx, landlordID)
}

// ListByProperty returns a property's codes, owner-gated.
func (s *InviteService) ListByProperty(ctx context.Context, propertyID, landlordID string) ([]domain.InviteCode, error) {
	prop, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if prop.LandlordID != landlordID {
		return nil, ErrPropertyNotFound
	}
	return s.Store.InviteCodes().ListInviteCodesByProperty(ctx, propertyID)
}

// GetOwned returns a code by id if the landlord issued it. Codes owned by
// other landlords report as not found.
func (s *InviteService) GetOwned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	return s.owned(ctx, codeID, landlordID)
}

// Purge deletes terminal-status codes last touched before the cutoff and
// reports how many went. This is the only path that deletes code records.
func (s *InviteService) Purge(ctx context.Context, before time.Time) (int64, error) {
	log := slogx.FromContext(ctx)

	n, err := s.Store.InviteCodes().PurgeTerminal(ctx, before)
	if err != nil {
		log.Error("purge failed", slog.Any("error", err))
		return 0, err
	}

	log.Info("purged terminal invite codes",
		slog.Int64("deleted", n),
		slog.Time("before", before),
	)
	return n, nil
}

func (s *InviteService) owned(ctx context.Context, codeID, landlordID string) (domain.InviteCode, error) {
	if codeID == "" {
		return domain.InviteCode{}, invalidf("invite code id is required")
	}

	c, err := s.Store.InviteCodes().GetInviteCodeByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InviteCode{}, ErrCodeNotFound
		}
		return domain.InviteCode{}, err
	}
	if c.LandlordID != landlordID {
		return domain.InviteCode{}, ErrCodeNotFound
	}
	return c, nil
}

// mapStateErr translates a store *StateError into the service-level
// business outcome for lifecycle writes.
func mapStateErr(err error, accountID string) error {
	var state *store.StateError
	if !errors.As(err, &state) {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	switch state.Status {
	case domain.CodeUsed:
		return &AlreadyUsedError{UsedByYou: accountID != "" && state.UsedBy == accountID}
	case domain.CodeExpired:
		return ErrCodeExpired
	case domain.CodeRevoked:
		return ErrCodeRevoked
	default:
		return err
	}
}
