package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, username, first_name, last_name, phone_number,
	password_hash, role, active, staff, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u     domain.User
		id    string
		phone sql.NullString
		role  string
	)
	err := row.Scan(
		&id, &u.Email, &u.Username, &u.FirstName, &u.LastName, &phone,
		&u.PasswordHash, &role, &u.Active, &u.Staff, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.User{}, err
	}
	u.PhoneNumber = mapNullString(phone)
	u.Role = domain.Role(role)
	return u, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, username, first_name, last_name, phone_number,
			password_hash, role, active, staff, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Email, u.Username, u.FirstName, u.LastName,
		mapStringNull(u.PhoneNumber), u.PasswordHash, u.Role.String(),
		u.Active, u.Staff, now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID.String())
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID.String())
	return err
}

func (r *usersRepo) UpdateProfileFields(
	ctx context.Context,
	userID uuid.UUID,
	firstName, lastName, phoneNumber string,
) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = ?, last_name = ?, phone_number = ?, updated_at = ?
		WHERE id = ?`,
		firstName, lastName, mapStringNull(phoneNumber),
		time.Now().UTC(), userID.String(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID.String())
	return err
}
