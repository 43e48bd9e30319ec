package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/idx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotPropertyOwner = errors.New("property belongs to another vendor")
	ErrInvalidProperty  = errors.New("invalid property request")
)

const defaultCurrency = "NGN"

// PropertyService manages vendor listings, their images, and their feature
// lines. Writes are restricted to the owning vendor or a superadmin; reads
// are public and unfiltered.
type PropertyService struct {
	Store store.Store
}

// PropertyParams is the caller-editable slice of a listing.
type PropertyParams struct {
	Title       string
	Description string
	Type        domain.PropertyType
	Listing     domain.ListingType
	Status      domain.PropertyStatus

	Address string
	City    string
	State   string

	Price    float64
	Currency string

	Bedrooms      int
	Bathrooms     int
	SquareFootage int
	YearBuilt     int

	Featured bool
}

// PropertyDetail is a listing with its attached images and features.
type PropertyDetail struct {
	Property domain.Property
	Images   []domain.PropertyImage
	Features []domain.PropertyFeature
}

// CreateProperty opens a new listing owned by the acting vendor.
func (s *PropertyService) CreateProperty(ctx context.Context, actor Identity, params PropertyParams) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	// 1. Only vendors (and superadmins) hold listings.
	if !actor.Role.CanManageProperties() {
		return domain.Property{}, ErrNotPropertyOwner
	}

	// 2. Validate the listing fields.
	if err := validateProperty(&params); err != nil {
		return domain.Property{}, err
	}
	if params.Status == "" {
		params.Status = domain.StatusAvailable
	}

	// 3. Insert.
	property := propertyFromParams(uuid.New(), actor.UserID, params)
	if err := s.Store.Properties().CreateProperty(ctx, property); err != nil {
		log.Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, err
	}

	log.Info("property created",
		slog.String("property_id", property.ID.String()),
		slog.String("vendor_id", actor.UserID.String()),
	)
	return property, nil
}

// UpdateProperty rewrites the editable fields of an owned listing.
func (s *PropertyService) UpdateProperty(ctx context.Context, actor Identity, propertyID uuid.UUID, params PropertyParams) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	existing, err := s.requireOwnership(ctx, actor, propertyID)
	if err != nil {
		return domain.Property{}, err
	}
	if err := validateProperty(&params); err != nil {
		return domain.Property{}, err
	}
	if params.Status == "" {
		params.Status = existing.Status
	}

	updated := propertyFromParams(propertyID, existing.VendorID, params)
	updated.Verified = existing.Verified
	updated.ViewsCount = existing.ViewsCount
	updated.CreatedAt = existing.CreatedAt
	if err := s.Store.Properties().UpdateProperty(ctx, updated); err != nil {
		log.Error("failed to update property", slog.Any("error", err))
		return domain.Property{}, err
	}
	return updated, nil
}

// DeleteProperty removes a listing and everything attached to it.
func (s *PropertyService) DeleteProperty(ctx context.Context, actor Identity, propertyID uuid.UUID) error {
	log := slogx.FromContext(ctx)

	if _, err := s.requireOwnership(ctx, actor, propertyID); err != nil {
		return err
	}
	if err := s.Store.Properties().DeleteProperty(ctx, propertyID); err != nil {
		log.Error("failed to delete property", slog.Any("error", err))
		return err
	}
	log.Info("property deleted", slog.String("property_id", propertyID.String()))
	return nil
}

// ListProperties returns every listing, newest first. Public surface.
func (s *PropertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.Store.Properties().ListProperties(ctx)
}

// ListVendorProperties returns the acting vendor's own listings.
func (s *PropertyService) ListVendorProperties(ctx context.Context, vendorID uuid.UUID) ([]domain.Property, error) {
	return s.Store.Properties().ListVendorProperties(ctx, vendorID)
}

// GetProperty returns a listing with images and features, counting the view.
func (s *PropertyService) GetProperty(ctx context.Context, propertyID uuid.UUID) (PropertyDetail, error) {
	log := slogx.FromContext(ctx)

	property, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PropertyDetail{}, ErrPropertyNotFound
		}
		log.Error("failed to fetch property", slog.Any("error", err))
		return PropertyDetail{}, err
	}

	// The view counter is best effort; a failed bump never hides the page.
	if err := s.Store.Properties().IncrementViews(ctx, propertyID); err != nil {
		log.Warn("failed to bump view counter",
			slog.String("property_id", propertyID.String()),
			slog.Any("error", err),
		)
	} else {
		property.ViewsCount++
	}

	images, err := s.Store.Properties().ListImages(ctx, propertyID)
	if err != nil {
		log.Error("failed to list property images", slog.Any("error", err))
		return PropertyDetail{}, err
	}
	features, err := s.Store.Properties().ListFeatures(ctx, propertyID)
	if err != nil {
		log.Error("failed to list property features", slog.Any("error", err))
		return PropertyDetail{}, err
	}

	return PropertyDetail{Property: property, Images: images, Features: features}, nil
}

// AddImage attaches an image URL to an owned listing.
func (s *PropertyService) AddImage(ctx context.Context, actor Identity, propertyID uuid.UUID, url, altText string) (domain.PropertyImage, error) {
	if _, err := s.requireOwnership(ctx, actor, propertyID); err != nil {
		return domain.PropertyImage{}, err
	}
	if strings.TrimSpace(url) == "" {
		return domain.PropertyImage{}, ErrInvalidProperty
	}

	img := domain.PropertyImage{
		ID:         idx.New(),
		PropertyID: propertyID,
		URL:        url,
		AltText:    altText,
	}
	if err := s.Store.Properties().AddImage(ctx, img); err != nil {
		return domain.PropertyImage{}, err
	}
	return img, nil
}

// RemoveImage detaches an image from an owned listing. The delete is
// scoped to the listing, so an image id belonging to another vendor's
// listing cannot be removed through an owned one.
func (s *PropertyService) RemoveImage(ctx context.Context, actor Identity, propertyID uuid.UUID, imageID idx.ID) error {
	if _, err := s.requireOwnership(ctx, actor, propertyID); err != nil {
		return err
	}
	if err := s.Store.Properties().RemoveImage(ctx, propertyID, imageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

// AddFeature attaches a feature line to an owned listing.
func (s *PropertyService) AddFeature(ctx context.Context, actor Identity, propertyID uuid.UUID, feature string) (domain.PropertyFeature, error) {
	if _, err := s.requireOwnership(ctx, actor, propertyID); err != nil {
		return domain.PropertyFeature{}, err
	}
	if strings.TrimSpace(feature) == "" {
		return domain.PropertyFeature{}, ErrInvalidProperty
	}

	f := domain.PropertyFeature{
		ID:         idx.New(),
		PropertyID: propertyID,
		Feature:    feature,
	}
	if err := s.Store.Properties().AddFeature(ctx, f); err != nil {
		return domain.PropertyFeature{}, err
	}
	return f, nil
}

// RemoveFeature detaches a feature line from an owned listing, scoped the
// same way as RemoveImage.
func (s *PropertyService) RemoveFeature(ctx context.Context, actor Identity, propertyID uuid.UUID, featureID idx.ID) error {
	if _, err := s.requireOwnership(ctx, actor, propertyID); err != nil {
		return err
	}
	if err := s.Store.Properties().RemoveFeature(ctx, propertyID, featureID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return nil
}

// requireOwnership loads a listing and checks the actor may modify it.
func (s *PropertyService) requireOwnership(ctx context.Context, actor Identity, propertyID uuid.UUID) (domain.Property, error) {
	property, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrPropertyNotFound
		}
		return domain.Property{}, err
	}
	if property.VendorID != actor.UserID && !actor.Role.IsAdmin() {
		return domain.Property{}, ErrNotPropertyOwner
	}
	return property, nil
}

func validateProperty(params *PropertyParams) error {
	if strings.TrimSpace(params.Title) == "" || params.Price < 0 {
		return ErrInvalidProperty
	}
	if _, err := domain.ParsePropertyType(string(params.Type)); err != nil {
		return ErrInvalidProperty
	}
	if _, err := domain.ParseListingType(string(params.Listing)); err != nil {
		return ErrInvalidProperty
	}
	if params.Status != "" {
		if _, err := domain.ParsePropertyStatus(string(params.Status)); err != nil {
			return ErrInvalidProperty
		}
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	return nil
}

func propertyFromParams(id, vendorID uuid.UUID, params PropertyParams) domain.Property {
	return domain.Property{
		ID:            id,
		VendorID:      vendorID,
		Title:         params.Title,
		Description:   params.Description,
		Type:          params.Type,
		Listing:       params.Listing,
		Status:        params.Status,
		Address:       params.Address,
		City:          params.City,
		State:         params.State,
		Price:         params.Price,
		Currency:      params.Currency,
		Bedrooms:      params.Bedrooms,
		Bathrooms:     params.Bathrooms,
		SquareFootage: params.SquareFootage,
		YearBuilt:     params.YearBuilt,
		Featured:      params.Featured,
	}
}
