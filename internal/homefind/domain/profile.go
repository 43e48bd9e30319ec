package domain

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfile is the one-to-one extension record for vendor accounts.
// It is created lazily on first access.
type VendorProfile struct {
	UserID          uuid.UUID
	CompanyName     string
	BusinessAddress string
	Bio             string
	Rating          float64 // 0.00 - 5.00
	TotalReviews    int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustomerProfile is the one-to-one extension record for customer accounts,
// created lazily on first access.
type CustomerProfile struct {
	UserID            uuid.UUID
	DateOfBirth       *time.Time
	Occupation        string
	PreferredLocation string
	BudgetMin         *float64
	BudgetMax         *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
