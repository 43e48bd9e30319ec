package homefind_test

import (
	"testing"

	"github.com/lagoshomes/homefind/pkg/homefindsdk"
	"github.com/stretchr/testify/require"
)

// TestRegistration covers the public registration surface: account
// creation, duplicate detection, and input validation.
func TestRegistration(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := homefindsdk.NewSDKClient(baseURL)

	t.Run("creates customer by default", func(t *testing.T) {
		resp := registerAccount(t, client, "alice@example.com", "alice", "")
		require.Equal(t, "customer", resp.Role)
		// Mail delivery is disabled in the test container
		require.False(t, resp.EmailSent)
	})

	t.Run("creates vendor when requested", func(t *testing.T) {
		resp := registerAccount(t, client, "vendor@example.com", "vendor", "vendor")
		require.Equal(t, "vendor", resp.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := client.Register(t.Context(), homefindsdk.RegisterRequest{
			Email:    "alice@example.com",
			Username: "alice2",
			Password: testPassword,
		})
		assertAPIError(t, err, homefindsdk.ErrorCodeEmailTaken)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := client.Register(t.Context(), homefindsdk.RegisterRequest{
			Email:    "alice2@example.com",
			Username: "alice",
			Password: testPassword,
		})
		assertAPIError(t, err, homefindsdk.ErrorCodeUsernameTaken)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := client.Register(t.Context(), homefindsdk.RegisterRequest{
			Email:    "bob@example.com",
			Username: "bob",
			Password: "short",
		})
		assertAPIError(t, err, homefindsdk.ErrorCodeWeakPassword)
	})

	t.Run("rejects superadmin role", func(t *testing.T) {
		_, err := client.Register(t.Context(), homefindsdk.RegisterRequest{
			Email:    "admin@example.com",
			Username: "admin",
			Password: testPassword,
			Role:     "superadmin",
		})
		assertAPIError(t, err, homefindsdk.ErrorCodeInvalidRequest)
	})
}

// TestLoginGate verifies the authentication edges reachable without an
// activation link: inactive accounts and bad credentials.
func TestLoginGate(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := homefindsdk.NewSDKClient(baseURL)
	registerAccount(t, client, "carol@example.com", "carol", "")

	t.Run("rejects inactive account", func(t *testing.T) {
		_, err := client.Login(t.Context(), "carol@example.com", testPassword)
		assertAPIError(t, err, homefindsdk.ErrorCodeAccountInactive)
	})

	t.Run("wrong password does not reveal activation state", func(t *testing.T) {
		_, err := client.Login(t.Context(), "carol@example.com", "wrong-password")
		assertAPIError(t, err, homefindsdk.ErrorCodeInvalidCredential)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := client.Login(t.Context(), "nobody@example.com", testPassword)
		assertAPIError(t, err, homefindsdk.ErrorCodeInvalidCredential)
	})

	t.Run("forged activation link fails uniformly", func(t *testing.T) {
		err := client.Activate(t.Context(), "bm90LWEtcmVhbC11aWQ", "abc123-forged")
		assertAPIError(t, err, homefindsdk.ErrorCodeActivationFailed)
	})
}

// TestPasswordResetRequestIsEnumerationSafe verifies the reset endpoint
// answers identically for known and unknown addresses.
func TestPasswordResetRequestIsEnumerationSafe(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := homefindsdk.NewSDKClient(baseURL)
	registerAccount(t, client, "dave@example.com", "dave", "")

	require.NoError(t, client.RequestPasswordReset(t.Context(), "dave@example.com"))
	require.NoError(t, client.RequestPasswordReset(t.Context(), "ghost@example.com"))
}
