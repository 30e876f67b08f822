package service

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	minter := &InviteService{Store: s}
	redeemer := &RedemptionService{Store: s}
	svc := &ValidationService{Store: s}

	t.Run("a live code validates and echoes its target", func(t *testing.T) {
		c, err := minter.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
			UnitID:     "4A",
		})
		require.NoError(t, err)

		res, err := svc.Validate(ctx, c.Code, "anyone@example.com")
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.Empty(t, res.Reason)
		require.Equal(t, c.Code, res.Code)
		require.Equal(t, prop.ID, res.PropertyID)
		require.Equal(t, "Seaview Flats", res.PropertyName)
		require.Equal(t, "4A", res.UnitID)
		require.WithinDuration(t, c.ExpiresAt, res.ExpiresAt, time.Second)
	})

	t.Run("lookup normalizes the presented code", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		res, err := svc.Validate(ctx, "  "+c.Code+"\n", "anyone@example.com")
		require.NoError(t, err)
		require.True(t, res.Valid)
	})

	t.Run("malformed and unknown codes both report not_found", func(t *testing.T) {
		for _, raw := range []string{"", "short", "lowercase", "ABCD234O", "ZZZZ9999"} {
			res, err := svc.Validate(ctx, raw, "anyone@example.com")
			require.NoError(t, err)
			require.False(t, res.Valid)
			require.Equal(t, ReasonNotFound, res.Reason)
			require.Empty(t, res.PropertyID)
		}
	})

	t.Run("a past-deadline code reports expired and gets caught up", func(t *testing.T) {
		now := time.Now().UTC()
		stale := domain.InviteCode{
			ID:         "stale-validate",
			Code:       codex.Draw(),
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
			Status:     domain.CodeActive,
			ExpiresAt:  now.Add(-time.Hour),
			CreatedAt:  now.Add(-48 * time.Hour),
			UpdatedAt:  now.Add(-48 * time.Hour),
		}
		require.NoError(t, s.InviteCodes().CreateInviteCode(ctx, stale))

		res, err := svc.Validate(ctx, stale.Code, "anyone@example.com")
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.Equal(t, ReasonExpired, res.Reason)

		// The lazy write caught the row up.
		got, err := s.InviteCodes().GetInviteCodeByID(ctx, stale.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CodeExpired, got.Status)

		// A second look takes the stored-status path and agrees.
		res, err = svc.Validate(ctx, stale.Code, "anyone@example.com")
		require.NoError(t, err)
		require.Equal(t, ReasonExpired, res.Reason)
	})

	t.Run("a used code reports used", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")
		_, err := redeemer.Redeem(ctx, c.Code, "tenant-validate-used", "t@example.com")
		require.NoError(t, err)

		res, err := svc.Validate(ctx, c.Code, "anyone@example.com")
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.Equal(t, ReasonUsed, res.Reason)
	})

	t.Run("a revoked code reports revoked", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")
		_, err := minter.Revoke(ctx, c.ID, "landlord-1")
		require.NoError(t, err)

		res, err := svc.Validate(ctx, c.Code, "anyone@example.com")
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.Equal(t, ReasonRevoked, res.Reason)
	})

	t.Run("restricted codes check the verified email", func(t *testing.T) {
		c, err := minter.Generate(ctx, GenerateParams{
			PropertyID:      prop.ID,
			LandlordID:      "landlord-1",
			RestrictedEmail: "Invited@Example.com",
		})
		require.NoError(t, err)

		res, err := svc.Validate(ctx, c.Code, "stranger@example.com")
		require.NoError(t, err)
		require.False(t, res.Valid)
		require.Equal(t, ReasonEmailMismatch, res.Reason)

		// Case-insensitive match.
		res, err = svc.Validate(ctx, c.Code, "invited@example.com")
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.Equal(t, "Invited@Example.com", res.RestrictedEmail)
	})
}
