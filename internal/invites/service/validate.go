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

// Reason codes for an invalid validation outcome. "not_found" is the
// constant shape for everything the caller is not entitled to learn more
// about: unknown codes, malformed input, and restriction mismatches all
// look the same from outside.
const (
	ReasonNotFound      = "not_found"
	ReasonExpired       = "expired"
	ReasonUsed          = "used"
	ReasonRevoked       = "revoked"
	ReasonEmailMismatch = "email_mismatch"
)

// ValidationResult is a read-only verdict on a presented code. Invalid
// outcomes are results, not errors; only infrastructure faults surface as
// errors from Validate.
type ValidationResult struct {
	Valid  bool
	Reason string // empty when Valid

	// Echoed on success only.
	Code            string
	PropertyID      string
	PropertyName    string
	UnitID          string
	RestrictedEmail string
	ExpiresAt       time.Time
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// ValidationService answers "would this code redeem right now?" without
// consuming anything. Its single side effect is the opportunistic lazy
// expiry write, which is idempotent and best-effort.
type ValidationService struct {
	Store store.Store
}

// Validate checks a presented code against the authenticated identity's
// email. The result here is advisory: the Redeemer re-checks everything
// inside its transaction.
func (s *ValidationService) Validate(ctx context.Context, rawCode, identityEmail string) (ValidationResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalize and shape-check. Malformed input cannot match any code,
	// so it reports exactly like an unknown one.
	value := codex.Normalize(rawCode)
	if !codex.Valid(value) {
		return invalid(ReasonNotFound), nil
	}

	// 2. Look up the record.
	c, err := s.Store.InviteCodes().GetInviteCodeByValue(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalid(ReasonNotFound), nil
		}
		log.Error("failed to look up invite code", slog.Any("error", err))
		return ValidationResult{}, err
	}

	// 3. The deadline beats the stored status: a stale active record past
	// its deadline is expired no matter what the row says. Catch the row
	// up while we are here; correctness never depends on this write.
	now := time.Now().UTC()
	if c.Status == domain.CodeActive && c.ExpiredAt(now) {
		if err := s.Store.InviteCodes().MarkInviteCodeExpired(ctx, c.ID, now); err != nil {
			log.Warn("lazy expiry write failed", slog.Any("error", err))
		}
		return invalid(ReasonExpired), nil
	}

	switch c.Status {
	case domain.CodeUsed:
		return invalid(ReasonUsed), nil
	case domain.CodeExpired:
		return invalid(ReasonExpired), nil
	case domain.CodeRevoked:
		return invalid(ReasonRevoked), nil
	}

	// 4. Restriction check against the verified identity email.
	if !c.RedeemableBy(identityEmail) {
		return invalid(ReasonEmailMismatch), nil
	}

	// 5. Valid: echo what the joining tenant needs to confirm the target.
	propertyName := ""
	if prop, err := s.Store.Properties().GetPropertyByID(ctx, c.PropertyID); err == nil {
		propertyName = prop.Name
	} else {
		log.Warn("property lookup failed during validation",
			slog.String("property_id", c.PropertyID),
			slog.Any("error", err),
		)
	}

	return ValidationResult{
		Valid:           true,
		Code:            c.Code,
		PropertyID:      c.PropertyID,
		PropertyName:    propertyName,
		UnitID:          c.UnitID,
		RestrictedEmail: c.RestrictedEmail,
		ExpiresAt:       c.ExpiresAt,
	}, nil
}
