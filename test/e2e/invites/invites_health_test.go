package invites_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the liveness and readiness probes respond
// without authentication.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	t.Run("livez reports ok", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/livez")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health invitesdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz reports backend state", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health invitesdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Backend)
	})

	t.Run("sdk readiness helper agrees", func(t *testing.T) {
		client := invitesdk.NewClient(baseURL, "")
		require.NoError(t, client.Ready(t.Context()))
	})
}
