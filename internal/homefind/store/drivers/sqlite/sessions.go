package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/pkg/idx"
)

type sessionsRepo struct {
	db dbtx
}

const sessionColumns = `id, user_id, token_hash, expires_at, revoked,
	created_at, updated_at`

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		s      domain.Session
		id     string
		userID string
	)
	err := row.Scan(
		&id, &userID, &s.TokenHash, &s.ExpiresAt, &s.Revoked,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, err
	}

	s.ID = idx.ID(id)
	s.UserID, err = uuid.Parse(userID)
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token_hash, expires_at, revoked,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.UserID.String(), s.TokenHash, s.ExpiresAt.UTC(),
		s.Revoked, now, now,
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id idx.ID) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id.String())
	s, err := scanSession(row)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE token_hash = ?`, hash)
	s, err := scanSession(row)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id idx.ID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id.String())
	return err
}

func (r *sessionsRepo) RevokeUserSessions(ctx context.Context, userID uuid.UUID, except idx.ID) error {
	if except.IsZero() {
		_, err := r.db.ExecContext(ctx,
			`UPDATE sessions SET revoked = 1, updated_at = ? WHERE user_id = ?`,
			time.Now().UTC(), userID.String())
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET revoked = 1, updated_at = ?
		WHERE user_id = ? AND id != ?`,
		time.Now().UTC(), userID.String(), except.String())
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, now.UTC())
	return err
}
