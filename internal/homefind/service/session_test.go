package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/pkg/jwtx"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleVendor)

	login, err := sessions.Login(ctx, "Alice@Example.com", "long-enough-pw")
	require.NoError(t, err)
	require.Equal(t, user.ID, login.User.ID)
	require.NotEmpty(t, login.AccessToken)
	require.False(t, login.SessionID.IsZero())

	id, err := sessions.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, id.UserID)
	require.Equal(t, domain.RoleVendor, id.Role)
	require.Equal(t, login.SessionID, id.SessionID)
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	_, err := sessions.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.Login(ctx, "nobody@example.com", "long-enough-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = sessions.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	_, err := accounts.Register(ctx, RegisterParams{
		Email: "alice@example.com", Username: "alice", Password: "long-enough-pw",
	})
	require.NoError(t, err)

	_, err = sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.ErrorIs(t, err, ErrAccountInactive)

	// With the wrong password the account state is not revealed.
	_, err = sessions.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	login, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)

	require.NoError(t, sessions.Logout(ctx, login.SessionID))

	// The JWT is still within its expiry but the session is gone.
	_, err = sessions.Authenticate(ctx, login.AccessToken)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthenticateRejectsForgedTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)
	login, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)

	_, err = sessions.Authenticate(ctx, "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidSession)

	// A token signed with a different secret is rejected even when its
	// claims reference a real session.
	forged, err := jwtx.NewSigner([]byte("other-secret"), "homefind-test", 0).
		Sign(login.User.ID.String(), string(login.User.Role), login.SessionID.String())
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, forged)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)

	first, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)
	second, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)

	err = sessions.ChangePassword(ctx, user.ID, second.SessionID, "long-enough-pw", "fresh-password")
	require.NoError(t, err)

	// The session that did the change survives; the other is revoked.
	_, err = sessions.Authenticate(ctx, second.AccessToken)
	require.NoError(t, err)
	_, err = sessions.Authenticate(ctx, first.AccessToken)
	require.ErrorIs(t, err, ErrInvalidSession)

	// Only the new password logs in.
	_, err = sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = sessions.Login(ctx, "alice@example.com", "fresh-password")
	require.NoError(t, err)
}

func TestChangePasswordRejections(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)
	sessions := newSessionService(t, st)

	user := registerActiveUser(t, accounts, mail, "alice@example.com", "alice", "long-enough-pw", domain.RoleCustomer)
	login, err := sessions.Login(ctx, "alice@example.com", "long-enough-pw")
	require.NoError(t, err)

	err = sessions.ChangePassword(ctx, user.ID, login.SessionID, "wrong-old", "fresh-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = sessions.ChangePassword(ctx, user.ID, login.SessionID, "long-enough-pw", "short")
	require.ErrorIs(t, err, ErrWeakPassword)
}
