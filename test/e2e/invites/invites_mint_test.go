package invites_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// TestMintInvite exercises the single mint endpoint end to end.
func TestMintInvite(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	landlord := landlordClient(t, baseURL, "landlord-mint")
	prop := createProperty(t, landlord, "Seaview Flats")

	t.Run("mints an active code with the default expiry", func(t *testing.T) {
		invite, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{
			PropertyID: prop.ID,
		})
		require.NoError(t, err)

		require.Regexp(t, codePattern, invite.Code)
		require.Equal(t, "active", invite.Status)
		require.Equal(t, prop.ID, invite.PropertyID)
		require.WithinDuration(t, time.Now().AddDate(0, 0, 7), invite.ExpiresAt, time.Minute)
	})

	t.Run("carries unit scoping and email restriction", func(t *testing.T) {
		invite, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{
			PropertyID:      prop.ID,
			UnitID:          "2B",
			RestrictedEmail: "tenant@example.com",
			ExpirationDays:  14,
		})
		require.NoError(t, err)
		require.Equal(t, "2B", invite.UnitID)
		require.Equal(t, "tenant@example.com", invite.RestrictedEmail)
		require.WithinDuration(t, time.Now().AddDate(0, 0, 14), invite.ExpiresAt, time.Minute)
	})

	t.Run("rejects a missing property", func(t *testing.T) {
		_, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{})
		requireAPIError(t, err, invitesdk.ErrorCodeInvalidRequest)
	})

	t.Run("unknown property reports not found", func(t *testing.T) {
		_, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{
			PropertyID: "no-such-property",
		})
		requireAPIError(t, err, invitesdk.ErrorCodeNotFound)
	})

	t.Run("cannot mint against another landlord's property", func(t *testing.T) {
		other := landlordClient(t, baseURL, "landlord-other")
		_, err := other.MintInvite(t.Context(), invitesdk.MintRequest{
			PropertyID: prop.ID,
		})
		requireAPIError(t, err, invitesdk.ErrorCodeNotFound)
	})
}

// TestBulkMintInvites exercises the bulk mint endpoint.
func TestBulkMintInvites(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	landlord := landlordClient(t, baseURL, "landlord-bulk")
	prop := createProperty(t, landlord, "Hilltop House")

	t.Run("mints distinct codes", func(t *testing.T) {
		resp, err := landlord.MintInvitesBulk(t.Context(), invitesdk.BulkMintRequest{
			MintRequest: invitesdk.MintRequest{PropertyID: prop.ID},
			Count:       10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Items, 10)
		require.Equal(t, 10, resp.Succeeded)
		require.Zero(t, resp.Failed)

		seen := make(map[string]struct{})
		for _, item := range resp.Items {
			require.NotNil(t, item.Invite)
			require.Empty(t, item.Error)
			seen[item.Invite.Code] = struct{}{}
		}
		require.Len(t, seen, 10)
	})

	t.Run("rejects out-of-range counts", func(t *testing.T) {
		for _, count := range []int{0, 51} {
			_, err := landlord.MintInvitesBulk(t.Context(), invitesdk.BulkMintRequest{
				MintRequest: invitesdk.MintRequest{PropertyID: prop.ID},
				Count:       count,
			})
			requireAPIError(t, err, invitesdk.ErrorCodeInvalidRequest)
		}
	})
}

// TestListInvites covers the landlord-facing listings.
func TestListInvites(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	landlord := landlordClient(t, baseURL, "landlord-list")
	propA := createProperty(t, landlord, "Property A")
	propB := createProperty(t, landlord, "Property B")

	for _, propID := range []string{propA.ID, propA.ID, propB.ID} {
		_, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{PropertyID: propID})
		require.NoError(t, err)
	}

	t.Run("lists every code the landlord issued", func(t *testing.T) {
		resp, err := landlord.ListInvites(t.Context())
		require.NoError(t, err)
		require.Len(t, resp.Invites, 3)
	})

	t.Run("lists per property", func(t *testing.T) {
		resp, err := landlord.ListPropertyInvites(t.Context(), propA.ID)
		require.NoError(t, err)
		require.Len(t, resp.Invites, 2)
		for _, invite := range resp.Invites {
			require.Equal(t, propA.ID, invite.PropertyID)
		}
	})

	t.Run("another landlord sees nothing", func(t *testing.T) {
		other := landlordClient(t, baseURL, "landlord-list-other")
		resp, err := other.ListInvites(t.Context())
		require.NoError(t, err)
		require.Empty(t, resp.Invites)

		_, err = other.ListPropertyInvites(t.Context(), propA.ID)
		requireAPIError(t, err, invitesdk.ErrorCodeNotFound)
	})
}
