package homefindsdk

import (
	"context"
	"net/http"
)

// Public property catalogue, no authentication required.

// ListProperties returns the public catalogue, newest first.
func (c *SDKClient) ListProperties(ctx context.Context) (*PropertyListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/properties", nil)
	if err != nil {
		return nil, err
	}

	var out PropertyListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetProperty returns a single listing with its images and features.
// Each call counts as a view.
func (c *SDKClient) GetProperty(ctx context.Context, id string) (*PropertyDetailResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/properties/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out PropertyDetailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
