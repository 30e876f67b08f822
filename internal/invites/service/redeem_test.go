package service

import (
	"context"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/stretchr/testify/require"
)

func TestRedeem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	minter := &InviteService{Store: s}
	svc := &RedemptionService{Store: s}

	t.Run("consumes the code and links the tenant", func(t *testing.T) {
		c, err := minter.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
			UnitID:     "3C",
		})
		require.NoError(t, err)

		out, err := svc.Redeem(ctx, c.Code, "tenant-1", "tenant1@example.com")
		require.NoError(t, err)

		require.Equal(t, domain.CodeUsed, out.Code.Status)
		require.Equal(t, "tenant-1", out.Code.UsedBy)
		require.NotNil(t, out.Code.UsedAt)

		require.NotEmpty(t, out.Tenancy.ID)
		require.Equal(t, prop.ID, out.Tenancy.PropertyID)
		require.Equal(t, "tenant-1", out.Tenancy.TenantID)
		require.Equal(t, "3C", out.Tenancy.UnitID)
		require.Equal(t, c.ID, out.Tenancy.InviteCodeID)
		require.Equal(t, domain.TenancyPending, out.Tenancy.Status)

		// The tenancy is durable and listed for both sides.
		byProp, err := s.Tenancies().ListTenanciesByProperty(ctx, prop.ID)
		require.NoError(t, err)
		require.Len(t, byProp, 1)

		byTenant, err := s.Tenancies().ListTenanciesByTenant(ctx, "tenant-1")
		require.NoError(t, err)
		require.Len(t, byTenant, 1)
		require.Equal(t, out.Tenancy.ID, byTenant[0].ID)
	})

	t.Run("second attempt reports already used", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		_, err := svc.Redeem(ctx, c.Code, "tenant-winner", "w@example.com")
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, c.Code, "tenant-loser", "l@example.com")
		var used *AlreadyUsedError
		require.ErrorAs(t, err, &used)
		require.False(t, used.UsedByYou)

		// The winner retrying is told it was their own redemption.
		_, err = svc.Redeem(ctx, c.Code, "tenant-winner", "w@example.com")
		require.ErrorAs(t, err, &used)
		require.True(t, used.UsedByYou)
	})

	t.Run("requires a tenant identity", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		_, err := svc.Redeem(ctx, c.Code, "", "t@example.com")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown and malformed codes report not found", func(t *testing.T) {
		_, err := svc.Redeem(ctx, "ZZZZ9999", "tenant-1", "t@example.com")
		require.ErrorIs(t, err, ErrCodeNotFound)

		_, err = svc.Redeem(ctx, "nope", "tenant-1", "t@example.com")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("a revoked code cannot be redeemed", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")
		_, err := minter.Revoke(ctx, c.ID, "landlord-1")
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, c.Code, "tenant-1", "t@example.com")
		require.ErrorIs(t, err, ErrCodeRevoked)
	})

	t.Run("a past-deadline code cannot be redeemed", func(t *testing.T) {
		now := time.Now().UTC()
		stale := domain.InviteCode{
			ID:         "stale-redeem",
			Code:       codex.Draw(),
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
			Status:     domain.CodeActive,
			ExpiresAt:  now.Add(-time.Hour),
			CreatedAt:  now.Add(-48 * time.Hour),
			UpdatedAt:  now.Add(-48 * time.Hour),
		}
		require.NoError(t, s.InviteCodes().CreateInviteCode(ctx, stale))

		_, err := svc.Redeem(ctx, stale.Code, "tenant-1", "t@example.com")
		require.ErrorIs(t, err, ErrCodeExpired)

		// Nothing was consumed or linked.
		got, err := s.InviteCodes().GetInviteCodeByID(ctx, stale.ID)
		require.NoError(t, err)
		require.Empty(t, got.UsedBy)

		tenancies, err := s.Tenancies().ListTenanciesByTenant(ctx, "tenant-1")
		require.NoError(t, err)
		for _, tn := range tenancies {
			require.NotEqual(t, stale.ID, tn.InviteCodeID)
		}
	})

	t.Run("restricted codes reject other identities", func(t *testing.T) {
		c, err := minter.Generate(ctx, GenerateParams{
			PropertyID:      prop.ID,
			LandlordID:      "landlord-1",
			RestrictedEmail: "invited@example.com",
		})
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, c.Code, "tenant-stranger", "stranger@example.com")
		require.ErrorIs(t, err, ErrEmailMismatch)

		// The rejection left the code live for the invited identity.
		out, err := svc.Redeem(ctx, c.Code, "tenant-invited", "INVITED@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.CodeUsed, out.Code.Status)
	})

	t.Run("one tenant cannot hold two live tenancies on one property", func(t *testing.T) {
		first := mustMint(t, s, prop.ID, "landlord-1")
		_, err := svc.Redeem(ctx, first.Code, "tenant-repeat", "r@example.com")
		require.NoError(t, err)

		second := mustMint(t, s, prop.ID, "landlord-1")
		_, err = svc.Redeem(ctx, second.Code, "tenant-repeat", "r@example.com")
		require.ErrorIs(t, err, ErrTenancyExists)

		// The second code survived the failed attempt.
		got, err := s.InviteCodes().GetInviteCodeByID(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CodeActive, got.Status)
	})

	t.Run("generate, validate, redeem round trip", func(t *testing.T) {
		c, err := minter.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
		})
		require.NoError(t, err)

		res, err := (&ValidationService{Store: s}).Validate(ctx, c.Code, "round@example.com")
		require.NoError(t, err)
		require.True(t, res.Valid)

		out, err := svc.Redeem(ctx, c.Code, "tenant-round", "round@example.com")
		require.NoError(t, err)
		require.Equal(t, c.ID, out.Code.ID)

		res, err = (&ValidationService{Store: s}).Validate(ctx, c.Code, "round@example.com")
		require.NoError(t, err)
		require.Equal(t, ReasonUsed, res.Reason)
	})
}
