package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/pkg/cryptox"
)

func TestRequestResetEnumerationSafe(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)
	sentBefore := mail.count()

	// Known, unknown, and empty addresses all report success.
	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	require.NoError(t, resets.RequestReset(ctx, "nobody@example.com"))
	require.NoError(t, resets.RequestReset(ctx, ""))

	// Only the known address actually got mail.
	require.Equal(t, sentBefore+1, mail.count())
	require.Contains(t, mail.last(t).Body, testBaseURL+"/password/reset/confirm/")
}

func TestRequestResetSkipsInactive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)

	_, err := accounts.Register(ctx, RegisterParams{
		Email: "alice@example.com", Username: "alice", Password: "long-enough-pw",
	})
	require.NoError(t, err)
	sentBefore := mail.count()

	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	require.Equal(t, sentBefore, mail.count())
}

func TestRequestResetSwallowsDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	mail.fail = true
	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
}

func TestConfirmResetOneShot(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	uid, tok := extractLink(t, mail.last(t).Body, "/password/reset/confirm/")

	require.NoError(t, resets.ConfirmReset(ctx, uid, tok, "brand-new-password"))

	// The stored hash verifies against the new password.
	fresh, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("brand-new-password", fresh.PasswordHash))

	// The link is dead once the hash changed.
	require.ErrorIs(t, resets.ConfirmReset(ctx, uid, tok, "another-password"), ErrInvalidResetToken)
}

func TestConfirmResetRevokesSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)
	sessions := newSessionService(t, st)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	login, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)

	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	uid, tok := extractLink(t, mail.last(t).Body, "/password/reset/confirm/")
	require.NoError(t, resets.ConfirmReset(ctx, uid, tok, "brand-new-password"))

	// The pre-reset access token no longer authenticates.
	_, err = sessions.Authenticate(ctx, login.AccessToken)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestConfirmResetValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	uid, tok := extractLink(t, mail.last(t).Body, "/password/reset/confirm/")

	// Garbage uid and tampered token fail uniformly; weak passwords are
	// rejected only behind a valid link.
	require.ErrorIs(t, resets.ConfirmReset(ctx, "!!!", tok, "brand-new-password"), ErrInvalidResetToken)
	require.ErrorIs(t, resets.ConfirmReset(ctx, uid, tok+"x", "brand-new-password"), ErrInvalidResetToken)
	require.ErrorIs(t, resets.ConfirmReset(ctx, uid, tok, "short"), ErrWeakPassword)

	// No mutation happened: the original password still works.
	fresh, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("long-enough-pw", fresh.PasswordHash))

	// And the untouched link still confirms.
	require.NoError(t, resets.ConfirmReset(ctx, uid, tok, "brand-new-password"))
}

// TestPasswordLifecycle walks one account through the full journey:
// register, activate, log in, forget the password, reset it, and log back
// in with the new credentials.
func TestPasswordLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	resets := newResetService(t, st, mail)
	sessions := newSessionService(t, st)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "original-password", domain.RoleCustomer)

	login, err := sessions.Login(ctx, "alice@example.com", "original-password")
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	require.NoError(t, resets.RequestReset(ctx, "alice@example.com"))
	uid, tok := extractLink(t, mail.last(t).Body, "/password/reset/confirm/")
	require.NoError(t, resets.ConfirmReset(ctx, uid, tok, "replacement-password"))

	// Old password dead, old session dead, new password works.
	_, err = sessions.Login(ctx, "alice@example.com", "original-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = sessions.Authenticate(ctx, login.AccessToken)
	require.ErrorIs(t, err, ErrInvalidSession)

	relogin, err := sessions.Login(ctx, "alice@example.com", "replacement-password")
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, relogin.AccessToken)
	require.NoError(t, err)
}
