package homefindsdk

import (
	"context"
	"net/http"
)

// Vendor property management. All operations require the vendor or
// superadmin role and, except for ListMyProperties, ownership of the
// listing (superadmins may act on any listing).

// ListMyProperties returns the authenticated vendor's own listings.
func (s *Session) ListMyProperties(ctx context.Context) (*PropertyListResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/vendor/properties", nil)
	if err != nil {
		return nil, err
	}

	var out PropertyListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateProperty creates a new listing owned by the authenticated vendor.
func (s *Session) CreateProperty(ctx context.Context, req PropertyRequest) (*PropertyBody, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/vendor/properties", req)
	if err != nil {
		return nil, err
	}

	var out PropertyBody
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProperty replaces the caller-editable fields of a listing.
func (s *Session) UpdateProperty(ctx context.Context, id string, req PropertyRequest) (*PropertyBody, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/vendor/properties/"+id, req)
	if err != nil {
		return nil, err
	}

	var out PropertyBody
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteProperty removes a listing along with its images and features.
func (s *Session) DeleteProperty(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/vendor/properties/"+id, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// AddImage attaches an image URL to a listing.
func (s *Session) AddImage(ctx context.Context, propertyID string, req AddImageRequest) (*ImageBody, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/vendor/properties/"+propertyID+"/images", req)
	if err != nil {
		return nil, err
	}

	var out ImageBody
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// RemoveImage detaches an image from a listing.
func (s *Session) RemoveImage(ctx context.Context, propertyID, imageID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/vendor/properties/"+propertyID+"/images/"+imageID, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// AddFeature attaches a feature label to a listing.
func (s *Session) AddFeature(ctx context.Context, propertyID string, req AddFeatureRequest) (*FeatureBody, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/vendor/properties/"+propertyID+"/features", req)
	if err != nil {
		return nil, err
	}

	var out FeatureBody
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// RemoveFeature detaches a feature from a listing.
func (s *Session) RemoveFeature(ctx context.Context, propertyID, featureID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/vendor/properties/"+propertyID+"/features/"+featureID, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
