package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("test-secret"), "homefind", time.Hour)

	raw, err := signer.Sign("user-1", "vendor", "sess-1")
	require.NoError(t, err)

	claims, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "vendor", claims.Role)
	require.Equal(t, "sess-1", claims.SessionID)
	require.Equal(t, "homefind", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("secret-a"), "homefind", time.Hour)
	other := NewSigner([]byte("secret-b"), "homefind", time.Hour)

	raw, err := signer.Sign("user-1", "customer", "sess-1")
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("secret"), "homefind", time.Hour)
	imposter := NewSigner([]byte("secret"), "someone-else", time.Hour)

	raw, err := imposter.Sign("user-1", "customer", "sess-1")
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("secret"), "homefind", -time.Minute)

	raw, err := signer.Sign("user-1", "customer", "sess-1")
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	signer := NewSigner([]byte("secret"), "homefind", time.Hour)

	for _, raw := range []string{"", "abc", "a.b.c"} {
		_, err := signer.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
