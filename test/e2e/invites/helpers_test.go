package invites_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/lodgeline/lodgeline/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for invite service end-to-end tests.
 * This includes container setup, token minting, and client construction.
 */

const (
	testImageName = "lodgeline-invites-test:latest"

	jwtSecret = "e2e-shared-secret-0123456789"
	jwtIssuer = "lodgeline"
)

var (
	landlordScopes = []string{
		"invites:mint", "invites:read", "invites:admin",
		"properties:write", "properties:read", "tenancies:read",
	}
	tenantScopes = []string{"invites:redeem", "tenancies:read"}
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Invite Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Invite Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/invites/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupInvitesContainer starts the invite service in a container and returns
// the base URL. Rate limits are relaxed so rapid test traffic doesn't trip
// the production defaults; rate limit behaviour has its own dedicated setup.
func setupInvitesContainer(t *testing.T) (string, func()) {
	return startContainer(t, map[string]string{
		"INVITES_JWT_SECRET":    jwtSecret,
		"INVITES_JWT_ISSUER":    jwtIssuer,
		"INVITES_DATABASE_FILE": "/invites.db",
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",

		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupInvitesContainerWithDefaultRateLimits starts the service with the
// production rate limits. Only the rate limit tests should use this.
func setupInvitesContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	return startContainer(t, map[string]string{
		"INVITES_JWT_SECRET":    jwtSecret,
		"INVITES_JWT_ISSUER":    jwtIssuer,
		"INVITES_DATABASE_FILE": "/invites.db",
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
	})
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// mintToken signs a bearer token the containerised service will accept.
func mintToken(t *testing.T, subject, email string, scopes []string) string {
	t.Helper()

	signer := &jwtx.Signer{Secret: []byte(jwtSecret), Issuer: jwtIssuer, TTL: time.Hour}
	token, err := signer.Sign(subject, email, scopes)
	require.NoError(t, err)
	return token
}

// landlordClient returns an SDK client authenticated as a landlord account.
func landlordClient(t *testing.T, baseURL, accountID string) *invitesdk.Client {
	t.Helper()
	return invitesdk.NewClient(baseURL, mintToken(t, accountID, accountID+"@example.com", landlordScopes))
}

// tenantClient returns an SDK client authenticated as a tenant account.
func tenantClient(t *testing.T, baseURL, accountID, email string) *invitesdk.Client {
	t.Helper()
	return invitesdk.NewClient(baseURL, mintToken(t, accountID, email, tenantScopes))
}

// createProperty registers a property and returns it.
func createProperty(t *testing.T, client *invitesdk.Client, name string) invitesdk.Property {
	t.Helper()

	prop, err := client.CreateProperty(t.Context(), invitesdk.CreatePropertyRequest{
		Name:    name,
		Address: "1 Example St",
	})
	require.NoError(t, err)
	require.NotEmpty(t, prop.ID)
	return prop
}

// requireAPIError asserts err is an *invitesdk.APIError with the wire code.
func requireAPIError(t *testing.T, err error, code string) *invitesdk.APIError {
	t.Helper()

	require.Error(t, err)
	var apiErr *invitesdk.APIError
	require.ErrorAs(t, err, &apiErr, "expected *invitesdk.APIError, got %T: %v", err, err)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
