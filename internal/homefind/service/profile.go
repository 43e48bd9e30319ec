package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var ErrRoleMismatch = errors.New("profile does not match account role")

// ProfileService manages the role-specific profile attached to an account.
// Profiles are created lazily: the first read for a matching role creates
// an empty row rather than requiring a separate setup step.
type ProfileService struct {
	Store store.Store
}

// Profile bundles the account identity with whichever role profile exists.
// Exactly one of Vendor/Customer is set, matching User.Role. Superadmins
// carry neither.
type Profile struct {
	User     domain.User
	Vendor   *domain.VendorProfile
	Customer *domain.CustomerProfile
}

// GetProfile returns the user's profile, creating the role-specific row on
// first access.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		log.Error("failed to fetch user", slog.Any("error", err))
		return Profile{}, err
	}

	p := Profile{User: user}
	switch user.Role {
	case domain.RoleVendor:
		vp, err := s.vendorProfile(ctx, userID)
		if err != nil {
			return Profile{}, err
		}
		p.Vendor = &vp
	case domain.RoleCustomer:
		cp, err := s.customerProfile(ctx, userID)
		if err != nil {
			return Profile{}, err
		}
		p.Customer = &cp
	}
	return p, nil
}

// UpdateIdentity mutates the shared identity fields any account may edit.
func (s *ProfileService) UpdateIdentity(ctx context.Context, userID uuid.UUID, firstName, lastName, phoneNumber string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Users().UpdateProfileFields(ctx, userID, firstName, lastName, phoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrInvalidRegistration
		}
		log.Error("failed to update identity fields", slog.Any("error", err))
		return err
	}
	return nil
}

// UpdateVendorProfile rewrites the vendor profile fields. The rating and
// review counters are not caller-editable and survive as stored.
func (s *ProfileService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, companyName, businessAddress, bio string) (domain.VendorProfile, error) {
	log := slogx.FromContext(ctx)

	if err := s.requireRole(ctx, userID, domain.RoleVendor); err != nil {
		return domain.VendorProfile{}, err
	}

	vp, err := s.vendorProfile(ctx, userID)
	if err != nil {
		return domain.VendorProfile{}, err
	}
	vp.CompanyName = companyName
	vp.BusinessAddress = businessAddress
	vp.Bio = bio

	if err := s.Store.VendorProfiles().UpdateVendorProfile(ctx, vp); err != nil {
		log.Error("failed to update vendor profile", slog.Any("error", err))
		return domain.VendorProfile{}, err
	}
	return vp, nil
}

// UpdateCustomerProfile rewrites the customer profile fields.
func (s *ProfileService) UpdateCustomerProfile(ctx context.Context, userID uuid.UUID, dateOfBirth *time.Time, occupation, preferredLocation string, budgetMin, budgetMax *float64) (domain.CustomerProfile, error) {
	log := slogx.FromContext(ctx)

	if err := s.requireRole(ctx, userID, domain.RoleCustomer); err != nil {
		return domain.CustomerProfile{}, err
	}

	cp, err := s.customerProfile(ctx, userID)
	if err != nil {
		return domain.CustomerProfile{}, err
	}
	cp.DateOfBirth = dateOfBirth
	cp.Occupation = occupation
	cp.PreferredLocation = preferredLocation
	cp.BudgetMin = budgetMin
	cp.BudgetMax = budgetMax

	if err := s.Store.CustomerProfiles().UpdateCustomerProfile(ctx, cp); err != nil {
		log.Error("failed to update customer profile", slog.Any("error", err))
		return domain.CustomerProfile{}, err
	}
	return cp, nil
}

func (s *ProfileService) requireRole(ctx context.Context, userID uuid.UUID, want domain.Role) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != want {
		return ErrRoleMismatch
	}
	return nil
}

func (s *ProfileService) vendorProfile(ctx context.Context, userID uuid.UUID) (domain.VendorProfile, error) {
	vp, err := s.Store.VendorProfiles().GetVendorProfile(ctx, userID)
	if err == nil {
		return vp, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.VendorProfile{}, err
	}

	vp = domain.VendorProfile{UserID: userID}
	if err := s.Store.VendorProfiles().CreateVendorProfile(ctx, vp); err != nil {
		// A concurrent first access may have created it already.
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.VendorProfiles().GetVendorProfile(ctx, userID)
		}
		return domain.VendorProfile{}, err
	}
	return vp, nil
}

func (s *ProfileService) customerProfile(ctx context.Context, userID uuid.UUID) (domain.CustomerProfile, error) {
	cp, err := s.Store.CustomerProfiles().GetCustomerProfile(ctx, userID)
	if err == nil {
		return cp, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.CustomerProfile{}, err
	}

	cp = domain.CustomerProfile{UserID: userID}
	if err := s.Store.CustomerProfiles().CreateCustomerProfile(ctx, cp); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.CustomerProfiles().GetCustomerProfile(ctx, userID)
		}
		return domain.CustomerProfile{}, err
	}
	return cp, nil
}
