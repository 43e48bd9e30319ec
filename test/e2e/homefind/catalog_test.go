package homefind_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lagoshomes/homefind/pkg/homefindsdk"
	"github.com/stretchr/testify/require"
)

// TestPublicCatalog verifies the unauthenticated property surface.
func TestPublicCatalog(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := homefindsdk.NewSDKClient(baseURL)

	t.Run("empty catalogue lists no properties", func(t *testing.T) {
		resp, err := client.ListProperties(t.Context())
		require.NoError(t, err)
		require.Empty(t, resp.Properties)
	})

	t.Run("unknown property is not found", func(t *testing.T) {
		_, err := client.GetProperty(t.Context(), uuid.NewString())
		assertAPIError(t, err, homefindsdk.ErrorCodeNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := client.GetProperty(t.Context(), "not-a-uuid")
		assertAPIError(t, err, homefindsdk.ErrorCodeNotFound)
	})

	t.Run("vendor surface requires authentication", func(t *testing.T) {
		session := client.NewSessionFromToken("not-a-real-token")
		_, err := session.ListMyProperties(t.Context())
		assertAPIError(t, err, homefindsdk.ErrorCodeInvalidToken)
	})
}
