package invites_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/stretchr/testify/require"
)

// TestInviteQRCode verifies the owner-only QR rendering of a code's join
// link.
func TestInviteQRCode(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	landlord := landlordClient(t, baseURL, "landlord-qr")
	prop := createProperty(t, landlord, "QR Gardens")

	invite, err := landlord.MintInvite(t.Context(), invitesdk.MintRequest{PropertyID: prop.ID})
	require.NoError(t, err)

	get := func(t *testing.T, inviteID, token string) *http.Response {
		t.Helper()
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet,
			baseURL+"/v1/invites/"+inviteID+"/qr", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("renders a PNG for the owner", func(t *testing.T) {
		resp := get(t, invite.ID, landlord.Token)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.True(t, len(body) > 8)
		// PNG magic bytes.
		require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
	})

	t.Run("another landlord gets not found", func(t *testing.T) {
		other := landlordClient(t, baseURL, "landlord-qr-other")
		resp := get(t, invite.ID, other.Token)
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
