package token

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
)

func testUser(t *testing.T) domain.User {
	t.Helper()
	return domain.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Active:       false,
	}
}

func TestCodec_IssueVerify(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	u := testUser(t)

	tok := c.Issue(u, PurposeActivate)
	require.NotEmpty(t, tok)
	require.Contains(t, tok, "-")
	require.True(t, c.Verify(u, PurposeActivate, tok))
}

func TestCodec_PurposeBound(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	u := testUser(t)

	tok := c.Issue(u, PurposeActivate)
	require.False(t, c.Verify(u, PurposeReset, tok))
}

func TestCodec_WrongUser(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	alice := testUser(t)
	bob := testUser(t)
	bob.ID = uuid.New()

	tok := c.Issue(alice, PurposeActivate)
	require.False(t, c.Verify(bob, PurposeActivate, tok))
}

func TestCodec_StateChangeInvalidates(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	u := testUser(t)

	activate := c.Issue(u, PurposeActivate)
	reset := c.Issue(u, PurposeReset)

	// Activation flips the active flag; both outstanding tokens die.
	u.Active = true
	require.False(t, c.Verify(u, PurposeActivate, activate))
	require.False(t, c.Verify(u, PurposeReset, reset))

	// A fresh reset token survives until the hash changes.
	reset = c.Issue(u, PurposeReset)
	require.True(t, c.Verify(u, PurposeReset, reset))
	u.PasswordHash = "$argon2id$v=19$m=19456,t=2,p=1$bmV3$bmV3aGFzaA"
	require.False(t, c.Verify(u, PurposeReset, reset))
}

func TestCodec_WrongSecret(t *testing.T) {
	u := testUser(t)
	tok := NewCodec([]byte("secret-a")).Issue(u, PurposeActivate)
	require.False(t, NewCodec([]byte("secret-b")).Verify(u, PurposeActivate, tok))
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec([]byte("test-secret"))
	u := testUser(t)
	tok := c.Issue(u, PurposeActivate)

	for _, bad := range []string{
		"",
		"-",
		"no-separator-at-all!!",
		"nottimestamp!-" + strings.SplitN(tok, "-", 2)[1],
		strings.SplitN(tok, "-", 2)[0] + "-tampered",
		tok + "x",
	} {
		require.False(t, c.Verify(u, PurposeActivate, bad), "token %q", bad)
	}
}

func TestEncodeDecodeUID(t *testing.T) {
	id := uuid.New()
	uid := EncodeUID(id)
	require.NotContains(t, uid, "/")

	got, err := DecodeUID(uid)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestDecodeUID_Malformed(t *testing.T) {
	for _, bad := range []string{"", "!!!", "aGVsbG8", EncodeUID(uuid.New()) + "x"} {
		_, err := DecodeUID(bad)
		require.ErrorIs(t, err, ErrInvalidUID, "uid %q", bad)
	}
}
