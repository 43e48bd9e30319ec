package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
)

type vendorProfilesRepo struct {
	db dbtx
}

func (r *vendorProfilesRepo) GetVendorProfile(ctx context.Context, userID uuid.UUID) (domain.VendorProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, company_name, business_address, bio, rating,
		       total_reviews, created_at, updated_at
		FROM vendor_profiles WHERE user_id = ?`, userID.String())

	var (
		p  domain.VendorProfile
		id string
	)
	err := row.Scan(
		&id, &p.CompanyName, &p.BusinessAddress, &p.Bio, &p.Rating,
		&p.TotalReviews, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.VendorProfile{}, mapNotFound(err)
	}

	p.UserID, err = uuid.Parse(id)
	if err != nil {
		return domain.VendorProfile{}, err
	}
	return p, nil
}

func (r *vendorProfilesRepo) CreateVendorProfile(ctx context.Context, p domain.VendorProfile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vendor_profiles (
			user_id, company_name, business_address, bio, rating,
			total_reviews, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID.String(), p.CompanyName, p.BusinessAddress, p.Bio,
		p.Rating, p.TotalReviews, now, now,
	)
	return mapConstraint(err)
}

func (r *vendorProfilesRepo) UpdateVendorProfile(ctx context.Context, p domain.VendorProfile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE vendor_profiles
		SET company_name = ?, business_address = ?, bio = ?, updated_at = ?
		WHERE user_id = ?`,
		p.CompanyName, p.BusinessAddress, p.Bio, time.Now().UTC(),
		p.UserID.String(),
	)
	return err
}

type customerProfilesRepo struct {
	db dbtx
}

func (r *customerProfilesRepo) GetCustomerProfile(ctx context.Context, userID uuid.UUID) (domain.CustomerProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, date_of_birth, occupation, preferred_location,
		       budget_min, budget_max, created_at, updated_at
		FROM customer_profiles WHERE user_id = ?`, userID.String())

	var (
		p         domain.CustomerProfile
		id        string
		dob       sql.NullTime
		budgetMin sql.NullFloat64
		budgetMax sql.NullFloat64
	)
	err := row.Scan(
		&id, &dob, &p.Occupation, &p.PreferredLocation,
		&budgetMin, &budgetMax, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.CustomerProfile{}, mapNotFound(err)
	}

	p.UserID, err = uuid.Parse(id)
	if err != nil {
		return domain.CustomerProfile{}, err
	}
	p.DateOfBirth = mapNullTimePtr(dob)
	p.BudgetMin = mapNullFloatPtr(budgetMin)
	p.BudgetMax = mapNullFloatPtr(budgetMax)
	return p, nil
}

func (r *customerProfilesRepo) CreateCustomerProfile(ctx context.Context, p domain.CustomerProfile) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customer_profiles (
			user_id, date_of_birth, occupation, preferred_location,
			budget_min, budget_max, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID.String(), mapOptionalTime(p.DateOfBirth), p.Occupation,
		p.PreferredLocation, mapOptionalFloat(p.BudgetMin),
		mapOptionalFloat(p.BudgetMax), now, now,
	)
	return mapConstraint(err)
}

func (r *customerProfilesRepo) UpdateCustomerProfile(ctx context.Context, p domain.CustomerProfile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE customer_profiles
		SET date_of_birth = ?, occupation = ?, preferred_location = ?,
		    budget_min = ?, budget_max = ?, updated_at = ?
		WHERE user_id = ?`,
		mapOptionalTime(p.DateOfBirth), p.Occupation, p.PreferredLocation,
		mapOptionalFloat(p.BudgetMin), mapOptionalFloat(p.BudgetMax),
		time.Now().UTC(), p.UserID.String(),
	)
	return err
}
