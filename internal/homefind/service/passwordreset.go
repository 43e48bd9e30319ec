package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/mailer"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/internal/homefind/token"
	"github.com/lagoshomes/homefind/pkg/cryptox"
	"github.com/lagoshomes/homefind/pkg/idx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var ErrInvalidResetToken = errors.New("reset link is invalid")

// PasswordResetService runs the forgotten-password workflow.
type PasswordResetService struct {
	Store   store.Store
	Codec   *token.Codec
	Mailer  mailer.Mailer
	BaseURL string
}

// RequestReset issues a reset link for the given email address. It always
// reports success to the caller: whether the address exists, is inactive,
// or the email could not be delivered is logged but never surfaced, so the
// endpoint cannot be used to enumerate accounts.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to look up reset address", slog.Any("error", err))
		}
		return nil
	}
	if !user.Active {
		log.Debug("reset requested for inactive account",
			slog.String("user_id", user.ID.String()))
		return nil
	}

	if err := s.sendReset(ctx, user); err != nil {
		log.Warn("reset email delivery failed",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
		return nil
	}

	log.Info("reset email sent", slog.String("user_id", user.ID.String()))
	return nil
}

// ConfirmReset verifies a reset link and sets the new password, revoking
// every session of the user in the same transaction. A valid link becomes
// useless afterwards: the token is bound to the old password hash. Token
// failures collapse to ErrInvalidResetToken; a weak replacement password is
// only reported once the link itself has been verified.
func (s *PasswordResetService) ConfirmReset(ctx context.Context, uid, tok, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Decode the uid path segment.
	userID, err := token.DecodeUID(uid)
	if err != nil {
		return ErrInvalidResetToken
	}

	// 2. Verify, rehash, and revoke in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return ErrInvalidResetToken
		}
		if !s.Codec.Verify(user, token.PurposeReset, tok) {
			return ErrInvalidResetToken
		}
		if len(newPassword) < minPasswordLength {
			return ErrWeakPassword
		}

		hash, err := cryptox.HashPassword(newPassword)
		if err != nil {
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Sessions().RevokeUserSessions(ctx, userID, idx.Zero)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidResetToken), errors.Is(err, ErrWeakPassword):
		log.Warn("reset confirmation failed", slog.String("uid", uid))
		return err
	default:
		log.Error("failed to confirm reset", slog.Any("error", err))
		return ErrInvalidResetToken
	}

	log.Info("password reset completed", slog.String("user_id", userID.String()))
	return nil
}

func (s *PasswordResetService) sendReset(ctx context.Context, user domain.User) error {
	link := fmt.Sprintf("%s/password/reset/confirm/%s/%s/",
		strings.TrimRight(s.BaseURL, "/"),
		token.EncodeUID(user.ID),
		s.Codec.Issue(user, token.PurposeReset),
	)
	subject, body, err := mailer.ResetEmail(user.Username, link)
	if err != nil {
		return err
	}
	return s.Mailer.Send(ctx, user.Email, subject, body)
}
