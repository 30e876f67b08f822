package invites_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/lodgeline/lodgeline/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// TestAuthenticationRequired verifies every business endpoint rejects
// unauthenticated and badly-signed requests.
func TestAuthenticationRequired(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	post := func(t *testing.T, path, token string) int {
		t.Helper()
		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, baseURL+path, bytes.NewReader([]byte("{}")))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	paths := []string{
		"/v1/invites",
		"/v1/invites/bulk",
		"/v1/invites/validate",
		"/v1/invites/redeem",
		"/v1/invites/purge",
		"/v1/properties",
	}

	t.Run("missing token is 401", func(t *testing.T) {
		for _, path := range paths {
			require.Equal(t, http.StatusUnauthorized, post(t, path, ""), "path %s", path)
		}
	})

	t.Run("forged token is 401", func(t *testing.T) {
		forger := &jwtx.Signer{Secret: []byte("not-the-real-secret"), Issuer: jwtIssuer, TTL: time.Hour}
		forged, err := forger.Sign("attacker", "a@example.com", landlordScopes)
		require.NoError(t, err)

		for _, path := range paths {
			require.Equal(t, http.StatusUnauthorized, post(t, path, forged), "path %s", path)
		}
	})

	t.Run("expired token is 401", func(t *testing.T) {
		signer := &jwtx.Signer{Secret: []byte(jwtSecret), Issuer: jwtIssuer, TTL: -time.Minute}
		expired, err := signer.Sign("acct-1", "a@example.com", landlordScopes)
		require.NoError(t, err)

		require.Equal(t, http.StatusUnauthorized, post(t, "/v1/invites", expired))
	})
}

// TestScopeEnforcement verifies tokens cannot reach past their scopes.
func TestScopeEnforcement(t *testing.T) {
	baseURL, cleanup := setupInvitesContainer(t)
	defer cleanup()

	landlord := landlordClient(t, baseURL, "landlord-scope")
	prop := createProperty(t, landlord, "Scope Manor")

	t.Run("a tenant token cannot mint", func(t *testing.T) {
		tenant := tenantClient(t, baseURL, "tenant-scope", "ts@example.com")
		_, err := tenant.MintInvite(t.Context(), invitesdk.MintRequest{PropertyID: prop.ID})
		require.Error(t, err)
		require.Contains(t, err.Error(), "403")
	})

	t.Run("a mint-only token cannot redeem", func(t *testing.T) {
		minter := invitesdk.NewClient(baseURL,
			mintToken(t, "landlord-scope", "ls@example.com", []string{"invites:mint"}))

		invite, err := landlordClient(t, baseURL, "landlord-scope").
			MintInvite(t.Context(), invitesdk.MintRequest{PropertyID: prop.ID})
		require.NoError(t, err)

		_, err = minter.RedeemInvite(t.Context(), invitesdk.RedeemRequest{Code: invite.Code})
		require.Error(t, err)
		require.Contains(t, err.Error(), "403")
	})

	t.Run("purge requires the admin scope", func(t *testing.T) {
		minter := invitesdk.NewClient(baseURL,
			mintToken(t, "landlord-scope", "ls@example.com", []string{"invites:mint", "invites:read"}))

		_, err := minter.PurgeInvites(t.Context(), invitesdk.PurgeRequest{OlderThanDays: 30})
		require.Error(t, err)
		require.Contains(t, err.Error(), "403")
	})
}
