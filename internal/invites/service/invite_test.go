package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/domain"
	"github.com/lodgeline/lodgeline/pkg/codex"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	t.Run("mints an active code with default expiry", func(t *testing.T) {
		before := time.Now().UTC()
		c, err := svc.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
		})
		require.NoError(t, err)

		require.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), c.Code)
		require.True(t, codex.Valid(c.Code))
		require.Equal(t, domain.CodeActive, c.Status)
		require.Equal(t, prop.ID, c.PropertyID)
		require.Equal(t, "landlord-1", c.LandlordID)
		require.WithinDuration(t, before.AddDate(0, 0, DefaultExpirationDays), c.ExpiresAt, 5*time.Second)

		got, err := s.InviteCodes().GetInviteCodeByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c.Code, got.Code)
	})

	t.Run("honours custom expiration days", func(t *testing.T) {
		c, err := svc.Generate(ctx, GenerateParams{
			PropertyID:     prop.ID,
			LandlordID:     "landlord-1",
			ExpirationDays: 30,
		})
		require.NoError(t, err)
		require.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 30), c.ExpiresAt, 5*time.Second)
	})

	t.Run("carries unit and restriction", func(t *testing.T) {
		c, err := svc.Generate(ctx, GenerateParams{
			PropertyID:      prop.ID,
			LandlordID:      "landlord-1",
			UnitID:          "2B",
			RestrictedEmail: "tenant@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, "2B", c.UnitID)
		require.Equal(t, "tenant@example.com", c.RestrictedEmail)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Generate(ctx, GenerateParams{LandlordID: "landlord-1"})
		require.ErrorIs(t, err, ErrInvalidRequest)

		_, err = svc.Generate(ctx, GenerateParams{PropertyID: prop.ID})
		require.ErrorIs(t, err, ErrInvalidRequest)

		_, err = svc.Generate(ctx, GenerateParams{
			PropertyID:     prop.ID,
			LandlordID:     "landlord-1",
			ExpirationDays: -1,
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("rejects unknown property", func(t *testing.T) {
		_, err := svc.Generate(ctx, GenerateParams{
			PropertyID: "no-such-property",
			LandlordID: "landlord-1",
		})
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("another landlord's property reports as not found", func(t *testing.T) {
		_, err := svc.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-2",
		})
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestGenerateUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		c, err := svc.Generate(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
		})
		require.NoError(t, err)

		_, dup := seen[c.Code]
		require.False(t, dup, "code %q minted twice", c.Code)
		seen[c.Code] = struct{}{}
	}
}

func TestGenerateBulk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	t.Run("rejects out-of-range counts", func(t *testing.T) {
		for _, count := range []int{0, -1, MaxBulkCount + 1} {
			_, err := svc.GenerateBulk(ctx, GenerateParams{
				PropertyID: prop.ID,
				LandlordID: "landlord-1",
			}, count)
			require.ErrorIs(t, err, ErrInvalidRequest)
		}
	})

	t.Run("mints distinct codes", func(t *testing.T) {
		items, err := svc.GenerateBulk(ctx, GenerateParams{
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
		}, 10)
		require.NoError(t, err)
		require.Len(t, items, 10)

		seen := make(map[string]struct{})
		for _, item := range items {
			require.NoError(t, item.Err)
			require.NotNil(t, item.Code)
			seen[item.Code.Code] = struct{}{}
		}
		require.Len(t, seen, 10)
	})

	t.Run("bad shared parameters fail the whole request", func(t *testing.T) {
		_, err := svc.GenerateBulk(ctx, GenerateParams{
			PropertyID: "no-such-property",
			LandlordID: "landlord-1",
		}, 3)
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestRevoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	t.Run("revokes an active code", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		revoked, err := svc.Revoke(ctx, c.ID, "landlord-1")
		require.NoError(t, err)
		require.Equal(t, domain.CodeRevoked, revoked.Status)
	})

	t.Run("revoking twice reports revoked", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		_, err := svc.Revoke(ctx, c.ID, "landlord-1")
		require.NoError(t, err)

		_, err = svc.Revoke(ctx, c.ID, "landlord-1")
		require.ErrorIs(t, err, ErrCodeRevoked)
	})

	t.Run("a used code cannot be revoked", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")
		redeemer := &RedemptionService{Store: s}
		_, err := redeemer.Redeem(ctx, c.Code, "tenant-used-revoke", "t@example.com")
		require.NoError(t, err)

		_, err = svc.Revoke(ctx, c.ID, "landlord-1")
		var used *AlreadyUsedError
		require.ErrorAs(t, err, &used)
	})

	t.Run("another landlord's code reports as not found", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		_, err := svc.Revoke(ctx, c.ID, "landlord-2")
		require.ErrorIs(t, err, ErrCodeNotFound)

		got, err := s.InviteCodes().GetInviteCodeByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, domain.CodeActive, got.Status)
	})

	t.Run("unknown id reports as not found", func(t *testing.T) {
		_, err := svc.Revoke(ctx, "no-such-id", "landlord-1")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})
}

func TestExtend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	t.Run("adds days onto the current deadline", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		extended, err := svc.Extend(ctx, c.ID, "landlord-1", 3)
		require.NoError(t, err)
		require.WithinDuration(t, c.ExpiresAt.AddDate(0, 0, 3), extended.ExpiresAt, 5*time.Second)
		require.Equal(t, domain.CodeActive, extended.Status)
	})

	t.Run("rejects non-positive days", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")

		_, err := svc.Extend(ctx, c.ID, "landlord-1", 0)
		require.ErrorIs(t, err, ErrInvalidRequest)
		_, err = svc.Extend(ctx, c.ID, "landlord-1", -2)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("a revoked code stays revoked", func(t *testing.T) {
		c := mustMint(t, s, prop.ID, "landlord-1")
		_, err := svc.Revoke(ctx, c.ID, "landlord-1")
		require.NoError(t, err)

		_, err = svc.Extend(ctx, c.ID, "landlord-1", 3)
		require.ErrorIs(t, err, ErrCodeRevoked)
	})

	t.Run("a past-deadline code reports expired", func(t *testing.T) {
		// Insert directly so the deadline is already gone.
		now := time.Now().UTC()
		stale := domain.InviteCode{
			ID:         "stale-extend",
			Code:       codex.Draw(),
			PropertyID: prop.ID,
			LandlordID: "landlord-1",
			Status:     domain.CodeActive,
			ExpiresAt:  now.Add(-time.Hour),
			CreatedAt:  now.Add(-48 * time.Hour),
			UpdatedAt:  now.Add(-48 * time.Hour),
		}
		require.NoError(t, s.InviteCodes().CreateInviteCode(ctx, stale))

		_, err := svc.Extend(ctx, stale.ID, "landlord-1", 3)
		require.ErrorIs(t, err, ErrCodeExpired)
	})
}

func TestListInviteCodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	propA := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	propB := mustCreateProperty(t, s, "landlord-1", "Hilltop House")
	mustCreateProperty(t, s, "landlord-2", "Other Place")
	svc := &InviteService{Store: s}

	a := mustMint(t, s, propA.ID, "landlord-1")
	b := mustMint(t, s, propB.ID, "landlord-1")

	t.Run("by landlord", func(t *testing.T) {
		codes, err := svc.ListByLandlord(ctx, "landlord-1")
		require.NoError(t, err)
		require.Len(t, codes, 2)

		codes, err = svc.ListByLandlord(ctx, "landlord-2")
		require.NoError(t, err)
		require.Empty(t, codes)
	})

	t.Run("by property", func(t *testing.T) {
		codes, err := svc.ListByProperty(ctx, propA.ID, "landlord-1")
		require.NoError(t, err)
		require.Len(t, codes, 1)
		require.Equal(t, a.ID, codes[0].ID)

		codes, err = svc.ListByProperty(ctx, propB.ID, "landlord-1")
		require.NoError(t, err)
		require.Len(t, codes, 1)
		require.Equal(t, b.ID, codes[0].ID)
	})

	t.Run("property listing is owner-gated", func(t *testing.T) {
		_, err := svc.ListByProperty(ctx, propA.ID, "landlord-2")
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestPurge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newTestStore(t)
	prop := mustCreateProperty(t, s, "landlord-1", "Seaview Flats")
	svc := &InviteService{Store: s}

	active := mustMint(t, s, prop.ID, "landlord-1")

	revoked := mustMint(t, s, prop.ID, "landlord-1")
	_, err := svc.Revoke(ctx, revoked.ID, "landlord-1")
	require.NoError(t, err)

	deleted, err := svc.Purge(ctx, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	// Active codes are never purged.
	_, err = s.InviteCodes().GetInviteCodeByID(ctx, active.ID)
	require.NoError(t, err)

	_, err = s.InviteCodes().GetInviteCodeByID(ctx, revoked.ID)
	require.Error(t, err)
}
