package homefindsdk

import "time"

// ErrorResponse is the service's error envelope.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// StatusResponse is returned by operations that acknowledge an action
// without a richer payload, e.g. {"status": "password_reset"}.
type StatusResponse struct {
	Status string `json:"status"`
}

type BootstrapRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type BootstrapResponse struct {
	User UserBody `json:"user"`
}

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
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	EmailSent bool   `json:"email_sent"`
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

// ProfileUpdateRequest carries a partial identity update plus the role
// profile section matching the account. Nil identity fields are left
// untouched by the server.
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
