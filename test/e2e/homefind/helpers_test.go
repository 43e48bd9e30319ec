package homefind_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/lagoshomes/homefind/pkg/homefindsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for listing service end-to-end
 * tests. This includes container setup, account helpers, and assertions.
 *
 * These tests exercise the containerized service over real HTTP. Flows
 * that depend on reading an emailed link (activation, password reset
 * confirmation) are covered by the in-process integration tests, where
 * the mail transport can be captured.
 */

const (
	testImageName = "homefind-test:latest"

	testPassword = "Sufficiently-long-1"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building HomeFind Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up HomeFind Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/homefind/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the container environment shared by all setups.
func baseEnv() map[string]string {
	return map[string]string{
		"HOMEFIND_DATABASE_FILE": "/tmp/homefind.db",
		"HOMEFIND_PEPPER_FILE":   "/tmp/pepper",
		"HOMEFIND_SECRET_FILE":   "/tmp/secret",
		"HOMEFIND_BASE_URL":      "http://localhost:8080",
		"MAIL_PROVIDER":          "none",
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
}

// setupContainer starts the service in a container with relaxed rate
// limits and returns the base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the
	// strict production limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits starts the service with DEFAULT rate
// limits. This is specifically for testing that rate limiting works; most
// tests should use setupContainer().
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
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

// registerAccount creates an account and asserts the response shape.
func registerAccount(t *testing.T, client *homefindsdk.SDKClient, email, username, role string) *homefindsdk.RegisterResponse {
	t.Helper()

	resp, err := client.Register(t.Context(), homefindsdk.RegisterRequest{
		Email:    email,
		Username: username,
		Password: testPassword,
		Role:     role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)
	require.Equal(t, username, resp.Username)

	return resp
}

// assertAPIError checks that err is an *APIError with the expected code.
func assertAPIError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, homefindsdk.IsCode(err, code),
		"expected error code %q, got: %v", code, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *homefindsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
