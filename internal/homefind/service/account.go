package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/mailer"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/internal/homefind/token"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrWeakPassword        = errors.New("password does not meet requirements")
	ErrActivationFailed    = errors.New("activation link is invalid")
	ErrAlreadyActive       = errors.New("account is already active")
	ErrUserNotFound        = errors.New("user not found")
)

const minPasswordLength = 8

// AccountService handles registration and the email activation workflow.
type AccountService struct {
	Store   store.Store
	Codec   *token.Codec
	Mailer  mailer.Mailer
	BaseURL string
}

// RegisterParams is the public registration input. Role may be vendor or
// customer; empty defaults to customer.
type RegisterParams struct {
	Email       string
	Username    string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        domain.Role
}

// Registration is the result of a successful Register call. DeliveryErr is
// set when the account was created but the activation email could not be
// sent; the account itself is never rolled back for a delivery failure.
type Registration struct {
	User        domain.User
	DeliveryErr error
}

// Register creates a new inactive account and sends the activation link.
func (s *AccountService) Register(ctx context.Context, params RegisterParams) (Registration, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email := strings.ToLower(strings.TrimSpace(params.Email))
	username := strings.TrimSpace(params.Username)
	if email == "" || username == "" {
		return Registration{}, ErrInvalidRegistration
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Registration{}, ErrInvalidRegistration
	}
	if len(params.Password) < minPasswordLength {
		return Registration{}, ErrWeakPassword
	}

	// 2. Resolve role. Public registration never produces a superadmin.
	role := params.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleVendor && role != domain.RoleCustomer {
		return Registration{}, ErrInvalidRegistration
	}

	// 3. Check availability up front for specific error messages. The
	// unique constraints still win any race at insert time.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return Registration{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return Registration{}, err
	}
	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return Registration{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username availability", slog.Any("error", err))
		return Registration{}, err
	}

	// 4. Hash the password.
	hash, err := cryptox.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Registration{}, err
	}

	// 5. Create the inactive user.
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		PhoneNumber:  strings.TrimSpace(params.PhoneNumber),
		PasswordHash: hash,
		Role:         role,
		Active:       false,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Registration{}, ErrInvalidRegistration
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Registration{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	// 6. Send the activation link. The account stays either way.
	reg := Registration{User: user}
	if err := s.sendActivation(ctx, user); err != nil {
		log.Warn("activation email delivery failed",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
		reg.DeliveryErr = err
	}
	return reg, nil
}

// Activate verifies an activation link and flips the account active. The
// token is bound to the inactive state, so a second use fails. Every
// failure mode collapses to ErrActivationFailed.
func (s *AccountService) Activate(ctx context.Context, uid, tok string) error {
	log := slogx.FromContext(ctx)

	// 1. Decode the uid path segment.
	userID, err := token.DecodeUID(uid)
	if err != nil {
		return ErrActivationFailed
	}

	// 2. Verify and flip inside a transaction so concurrent attempts
	// serialize and at most one succeeds.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return ErrActivationFailed
		}
		if user.Active || !s.Codec.Verify(user, token.PurposeActivate, tok) {
			return ErrActivationFailed
		}
		return tx.Users().SetActive(ctx, userID, true)
	})
	if err != nil {
		if errors.Is(err, ErrActivationFailed) {
			log.Warn("activation attempt failed", slog.String("uid", uid))
			return ErrActivationFailed
		}
		log.Error("failed to activate user", slog.Any("error", err))
		return ErrActivationFailed
	}

	log.Info("user activated", slog.String("user_id", userID.String()))
	return nil
}

// ResendActivation re-issues the activation email for an inactive account.
// Superadmin surface; errors are reported rather than masked.
func (s *AccountService) ResendActivation(ctx context.Context, userID uuid.UUID) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}
	if user.Active {
		return ErrAlreadyActive
	}
	return s.sendActivation(ctx, user)
}

func (s *AccountService) sendActivation(ctx context.Context, user domain.User) error {
	link := fmt.Sprintf("%s/activate/%s/%s/",
		strings.TrimRight(s.BaseURL, "/"),
		token.EncodeUID(user.ID),
		s.Codec.Issue(user, token.PurposeActivate),
	)
	subject, body, err := mailer.ActivationEmail(user.Username, link)
	if err != nil {
		return err
	}
	return s.Mailer.Send(ctx, user.Email, subject, body)
}
