package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/idx"
	"github.com/lagoshomes/homefind/pkg/jwtx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not activated")
	ErrInvalidSession     = errors.New("session is invalid or expired")
)

// DefaultSessionTTL bounds how long a login survives without re-auth.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionService handles login, logout, access token verification, and
// authenticated password changes. Access tokens are JWTs backed by a
// revocable session row, so a logout or password reset takes effect
// immediately rather than at token expiry.
type SessionService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	SessionTTL time.Duration
}

// LoginResult carries everything a successful login returns.
type LoginResult struct {
	User        domain.User
	SessionID   idx.ID
	AccessToken string
	ExpiresAt   time.Time
}

// Identity is the caller identity resolved from a verified access token.
type Identity struct {
	UserID    uuid.UUID
	Role      domain.Role
	SessionID idx.ID
}

// Login authenticates an active user and opens a new session.
func (s *SessionService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	// 2. Look up the user.
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 3. Check the password before revealing activation state.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login with wrong password",
				slog.String("user_id", user.ID.String()))
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return LoginResult{}, err
	}
	if !user.Active {
		return LoginResult{}, ErrAccountInactive
	}

	// 4. Open the session row.
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate session token", slog.Any("error", err))
		return LoginResult{}, err
	}
	session := domain.Session{
		ID:        idx.New(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: time.Now().Add(s.sessionTTL()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return LoginResult{}, err
	}

	// 5. Mint the access token bound to the session.
	access, err := s.Signer.Sign(user.ID.String(), string(user.Role), session.ID.String())
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return LoginResult{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("session_id", session.ID.String()),
	)

	return LoginResult{
		User:        user,
		SessionID:   session.ID,
		AccessToken: access,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// Logout revokes the session backing the caller's access token.
func (s *SessionService) Logout(ctx context.Context, sessionID idx.ID) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Sessions().RevokeSession(ctx, sessionID); err != nil {
		log.Error("failed to revoke session", slog.Any("error", err))
		return err
	}
	log.Info("session revoked", slog.String("session_id", sessionID.String()))
	return nil
}

// Authenticate verifies an access token and confirms its backing session is
// still live. All failures collapse to ErrInvalidSession.
func (s *SessionService) Authenticate(ctx context.Context, accessToken string) (Identity, error) {
	// 1. Verify the JWT itself.
	claims, err := s.Signer.Verify(accessToken)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}
	sessionID, err := idx.Parse(claims.SessionID)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}

	// 2. The session row must still be live. This is what makes logout and
	// password reset effective before the JWT expires.
	session, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}
	if session.UserID != userID || !session.Live(time.Now()) {
		return Identity{}, ErrInvalidSession
	}

	return Identity{UserID: userID, Role: role, SessionID: sessionID}, nil
}

// ChangePassword verifies the current password and replaces it, revoking
// every other session. The current session stays live so the caller is not
// logged out by their own change.
func (s *SessionService) ChangePassword(ctx context.Context, userID uuid.UUID, currentSession idx.ID, oldPassword, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Verify the old password.
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}
	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return err
	}

	// 2. Validate the replacement.
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	// 3. Swap the hash and drop every other session atomically.
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Sessions().RevokeUserSessions(ctx, userID, currentSession)
	})
	if err != nil {
		log.Error("failed to change password", slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.String("user_id", userID.String()))
	return nil
}

func (s *SessionService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.SessionTTL
}
