package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction helper for multi-step operations that must be
// atomic (activation, password reset).
type Store interface {
	Users() Users
	VendorProfiles() VendorProfiles
	CustomerProfiles() CustomerProfiles
	Properties() Properties
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Preferred over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// IsEmpty reports whether no users exist yet (first-run bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetUserByEmail is used during login and reset requests.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername checks username availability.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user. Unique violations on email, username,
	// or phone number surface as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// SetActive flips the active flag and bumps updated_at.
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, newHash string) error

	// UpdateProfileFields mutates the basic identity fields users may edit.
	UpdateProfileFields(ctx context.Context, userID uuid.UUID, firstName, lastName, phoneNumber string) error

	// DeleteUser cascades to profiles, sessions, and owned properties
	// (per schema).
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type VendorProfiles interface {
	// GetVendorProfile returns the profile for a vendor user.
	GetVendorProfile(ctx context.Context, userID uuid.UUID) (domain.VendorProfile, error)

	// CreateVendorProfile inserts an empty profile row for the user.
	CreateVendorProfile(ctx context.Context, p domain.VendorProfile) error

	// UpdateVendorProfile mutates the editable fields.
	UpdateVendorProfile(ctx context.Context, p domain.VendorProfile) error
}

type CustomerProfiles interface {
	// GetCustomerProfile returns the profile for a customer user.
	GetCustomerProfile(ctx context.Context, userID uuid.UUID) (domain.CustomerProfile, error)

	// CreateCustomerProfile inserts an empty profile row for the user.
	CreateCustomerProfile(ctx context.Context, p domain.CustomerProfile) error

	// UpdateCustomerProfile mutates the editable fields.
	UpdateCustomerProfile(ctx context.Context, p domain.CustomerProfile) error
}

type Properties interface {
	// GetPropertyByID returns a single property.
	GetPropertyByID(ctx context.Context, id uuid.UUID) (domain.Property, error)

	// ListProperties returns all listings, newest first. Deliberately
	// unfiltered; there is no search layer.
	ListProperties(ctx context.Context) ([]domain.Property, error)

	// ListVendorProperties returns the listings owned by a vendor.
	ListVendorProperties(ctx context.Context, vendorID uuid.UUID) ([]domain.Property, error)

	// CreateProperty inserts a new listing.
	CreateProperty(ctx context.Context, p domain.Property) error

	// UpdateProperty mutates the editable listing fields.
	UpdateProperty(ctx context.Context, p domain.Property) error

	// DeleteProperty removes a listing and cascades to images/features.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps views_count for a detail page hit.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// ListImages returns a property's images, oldest first.
	ListImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error)

	// AddImage attaches an image reference to a property.
	AddImage(ctx context.Context, img domain.PropertyImage) error

	// RemoveImage deletes an image reference. The delete is scoped to the
	// given property; ErrNotFound when the image is not attached to it.
	RemoveImage(ctx context.Context, propertyID uuid.UUID, id idx.ID) error

	// ListFeatures returns a property's feature lines.
	ListFeatures(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyFeature, error)

	// AddFeature attaches a feature line to a property.
	AddFeature(ctx context.Context, f domain.PropertyFeature) error

	// RemoveFeature deletes a feature line. The delete is scoped to the
	// given property; ErrNotFound when the feature is not attached to it.
	RemoveFeature(ctx context.Context, propertyID uuid.UUID, id idx.ID) error
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID fetches a session by id when validating access tokens.
	GetSessionByID(ctx context.Context, id idx.ID) (domain.Session, error)

	// GetSessionByTokenHash fetches a session by its hashed opaque token.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// RevokeSession flips revoked=1 and bumps updated_at.
	RevokeSession(ctx context.Context, id idx.ID) error

	// RevokeUserSessions bulk-revokes every session of a user (password
	// reset). except may be idx.Zero to revoke all of them.
	RevokeUserSessions(ctx context.Context, userID uuid.UUID, except idx.ID) error

	// DeleteExpiredSessions is housekeeping. now bounds what counts as
	// expired so tests can pin time.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}
