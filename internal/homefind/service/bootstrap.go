package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapInvalid      = errors.New("invalid bootstrap request")
)

// BootstrapService creates the first superadmin on a fresh install. Public
// registration never produces a superadmin, so this is the only way one
// comes into existence. The operation is guarded by a pre-shared token and
// refuses to run once any user exists.
type BootstrapService struct {
	Store store.Store
	Token string // Pre-configured bootstrap token
}

type BootstrapParams struct {
	Email    string
	Username string
	Password string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the superadmin account. The account is created active;
// there is no admin yet to approve it and the operator just proved control
// of the deployment via the token.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, params BootstrapParams) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, ErrBootstrapAlready
	}

	// 2. Validate provided token
	if token != s.Token {
		log.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	// 3. Validate input, same rules as registration
	email := strings.ToLower(strings.TrimSpace(params.Email))
	username := strings.TrimSpace(params.Username)
	if email == "" || username == "" {
		return domain.User{}, ErrBootstrapInvalid
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrBootstrapInvalid
	}
	if len(params.Password) < minPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	// 4. Hash password
	hash, err := cryptox.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash superadmin password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 5. Create the superadmin in a transaction. The emptiness check runs
	// again inside so concurrent bootstrap attempts serialize and at most
	// one succeeds.
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		Active:       true,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			return domain.User{}, ErrBootstrapAlready
		}
		log.Error("failed to create superadmin", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("system bootstrapped",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)
	return user, nil
}
