package cryptox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Pepper lives in a throwaway location so tests never touch a real one.
	SetPepperPath(filepath.Join("testdata", "pepper"))
	m.Run()
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, VerifyPassword("Secret123", hash))
	require.ErrorIs(t, VerifyPassword("wrong", hash), ErrPasswordMismatch)
}

func TestHashIsSalted(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword("same-password", a))
	require.NoError(t, VerifyPassword("same-password", b))
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, hash := range []string{
		"",
		"plainly-not-a-hash",
		"$argon2i$v=19$m=19456,t=2,p=1$abc$def",
		"$argon2id$v=18$m=19456,t=2,p=1$abc$def",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$def",
	} {
		err := VerifyPassword("whatever", hash)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}
