package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/pkg/idx"
)

type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCondo      PropertyType = "condo"
	PropertyTownhouse  PropertyType = "townhouse"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
)

type ListingType string

const (
	ListingSale  ListingType = "sale"
	ListingRent  ListingType = "rent"
	ListingLease ListingType = "lease"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusPending   PropertyStatus = "pending"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusInactive  PropertyStatus = "inactive"
)

var ErrInvalidPropertyEnum = errors.New("domain: invalid property enum value")

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyApartment, PropertyHouse, PropertyCondo,
		PropertyTownhouse, PropertyLand, PropertyCommercial:
		return PropertyType(s), nil
	}
	return "", ErrInvalidPropertyEnum
}

func ParseListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case ListingSale, ListingRent, ListingLease:
		return ListingType(s), nil
	}
	return "", ErrInvalidPropertyEnum
}

func ParsePropertyStatus(s string) (PropertyStatus, error) {
	switch PropertyStatus(s) {
	case StatusAvailable, StatusPending, StatusSold, StatusRented, StatusInactive:
		return PropertyStatus(s), nil
	}
	return "", ErrInvalidPropertyEnum
}

// Property is a vendor-owned real-estate listing.
type Property struct {
	ID          uuid.UUID
	VendorID    uuid.UUID // owning vendor's user id
	Title       string
	Description string
	Type        PropertyType
	Listing     ListingType
	Status      PropertyStatus

	Address string
	City    string
	State   string

	Price    float64
	Currency string // ISO 4217, defaults to NGN

	Bedrooms      int
	Bathrooms     int
	SquareFootage int
	YearBuilt     int

	Featured   bool
	Verified   bool
	ViewsCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyImage is a pass-through image reference; storage and processing
// happen elsewhere.
type PropertyImage struct {
	ID         idx.ID
	PropertyID uuid.UUID
	URL        string
	AltText    string
	CreatedAt  time.Time
}

// PropertyFeature is a free-text extra feature line attached to a property.
type PropertyFeature struct {
	ID         idx.ID
	PropertyID uuid.UUID
	Feature    string
}
