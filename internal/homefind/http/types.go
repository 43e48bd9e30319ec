package http

import (
	"time"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/service"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`

	// EmailSent is false when the account was created but the activation
	// email could not be delivered.
	EmailSent bool `json:"email_sent"`
}

type BootstrapRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type BootstrapResponse struct {
	User UserBody `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserBody  `json:"user"`
}

type UserBody struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"`
}

func userBody(u domain.User) UserBody {
	return UserBody{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
	}
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetConfirmRequest struct {
	NewPassword string `json:"new_password"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ProfileResponse struct {
	User     UserBody             `json:"user"`
	Vendor   *VendorProfileBody   `json:"vendor_profile,omitempty"`
	Customer *CustomerProfileBody `json:"customer_profile,omitempty"`
}

type VendorProfileBody struct {
	CompanyName     string  `json:"company_name"`
	BusinessAddress string  `json:"business_address"`
	Bio             string  `json:"bio"`
	Rating          float64 `json:"rating"`
	TotalReviews    int     `json:"total_reviews"`
}

type CustomerProfileBody struct {
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Occupation        string     `json:"occupation"`
	PreferredLocation string     `json:"preferred_location"`
	BudgetMin         *float64   `json:"budget_min,omitempty"`
	BudgetMax         *float64   `json:"budget_max,omitempty"`
}

func profileResponse(p service.Profile) ProfileResponse {
	resp := ProfileResponse{User: userBody(p.User)}
	if p.Vendor != nil {
		resp.Vendor = &VendorProfileBody{
			CompanyName:     p.Vendor.CompanyName,
			BusinessAddress: p.Vendor.BusinessAddress,
			Bio:             p.Vendor.Bio,
			Rating:          p.Vendor.Rating,
			TotalReviews:    p.Vendor.TotalReviews,
		}
	}
	if p.Customer != nil {
		resp.Customer = &CustomerProfileBody{
			DateOfBirth:       p.Customer.DateOfBirth,
			Occupation:        p.Customer.Occupation,
			PreferredLocation: p.Customer.PreferredLocation,
			BudgetMin:         p.Customer.BudgetMin,
			BudgetMax:         p.Customer.BudgetMax,
		}
	}
	return resp
}

type ProfileUpdateRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`

	Vendor   *VendorProfileUpdate   `json:"vendor_profile,omitempty"`
	Customer *CustomerProfileUpdate `json:"customer_profile,omitempty"`
}

type VendorProfileUpdate struct {
	CompanyName     string `json:"company_name"`
	BusinessAddress string `json:"business_address"`
	Bio             string `json:"bio"`
}

type CustomerProfileUpdate struct {
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Occupation        string     `json:"occupation"`
	PreferredLocation string     `json:"preferred_location"`
	BudgetMin         *float64   `json:"budget_min,omitempty"`
	BudgetMax         *float64   `json:"budget_max,omitempty"`
}

type PropertyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"property_type"`
	Listing     string `json:"listing_type"`
	Status      string `json:"status,omitempty"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`

	Bedrooms      int `json:"bedrooms"`
	Bathrooms     int `json:"bathrooms"`
	SquareFootage int `json:"square_footage"`
	YearBuilt     int `json:"year_built"`

	Featured bool `json:"featured"`
}

func (r PropertyRequest) params() service.PropertyParams {
	return service.PropertyParams{
		Title:         r.Title,
		Description:   r.Description,
		Type:          domain.PropertyType(r.Type),
		Listing:       domain.ListingType(r.Listing),
		Status:        domain.PropertyStatus(r.Status),
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		Price:         r.Price,
		Currency:      r.Currency,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		SquareFootage: r.SquareFootage,
		YearBuilt:     r.YearBuilt,
		Featured:      r.Featured,
	}
}

type PropertyBody struct {
	ID          string `json:"id"`
	VendorID    string `json:"vendor_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"property_type"`
	Listing     string `json:"listing_type"`
	Status      string `json:"status"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	Bedrooms      int `json:"bedrooms"`
	Bathrooms     int `json:"bathrooms"`
	SquareFootage int `json:"square_footage"`
	YearBuilt     int `json:"year_built"`

	Featured   bool `json:"featured"`
	Verified   bool `json:"verified"`
	ViewsCount int  `json:"views_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func propertyBody(p domain.Property) PropertyBody {
	return PropertyBody{
		ID:            p.ID.String(),
		VendorID:      p.VendorID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Type:          string(p.Type),
		Listing:       string(p.Listing),
		Status:        string(p.Status),
		Address:       p.Address,
		City:          p.City,
		State:         p.State,
		Price:         p.Price,
		Currency:      p.Currency,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		SquareFootage: p.SquareFootage,
		YearBuilt:     p.YearBuilt,
		Featured:      p.Featured,
		Verified:      p.Verified,
		ViewsCount:    p.ViewsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type PropertyListResponse struct {
	Properties []PropertyBody `json:"properties"`
}

type PropertyDetailResponse struct {
	PropertyBody

	Images   []ImageBody   `json:"images"`
	Features []FeatureBody `json:"features"`
}

type ImageBody struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}

type FeatureBody struct {
	ID      string `json:"id"`
	Feature string `json:"feature"`
}

func propertyDetailResponse(d service.PropertyDetail) PropertyDetailResponse {
	resp := PropertyDetailResponse{
		PropertyBody: propertyBody(d.Property),
		Images:       make([]ImageBody, 0, len(d.Images)),
		Features:     make([]FeatureBody, 0, len(d.Features)),
	}
	for _, img := range d.Images {
		resp.Images = append(resp.Images, ImageBody{
			ID:      img.ID.String(),
			URL:     img.URL,
			AltText: img.AltText,
		})
	}
	for _, f := range d.Features {
		resp.Features = append(resp.Features, FeatureBody{
			ID:      f.ID.String(),
			Feature: f.Feature,
		})
	}
	return resp
}

type AddImageRequest struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}

type AddFeatureRequest struct {
	Feature string `json:"feature"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
