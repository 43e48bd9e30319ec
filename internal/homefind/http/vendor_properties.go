package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/idx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

// VendorPropertiesHandler serves the authenticated vendor listing surface.
type VendorPropertiesHandler struct {
	PropertyService *service.PropertyService
}

func (h *VendorPropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}

	properties, err := h.PropertyService.ListVendorProperties(ctx, id.UserID)
	if err != nil {
		log.Error("failed to list vendor properties", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Failed to list properties")
		return
	}

	resp := PropertyListResponse{Properties: make([]PropertyBody, 0, len(properties))}
	for _, p := range properties {
		resp.Properties = append(resp.Properties, propertyBody(p))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *VendorPropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}

	var req PropertyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	property, err := h.PropertyService.CreateProperty(ctx, id, req.params())
	if err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, propertyBody(property))
}

func (h *VendorPropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}

	var req PropertyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	property, err := h.PropertyService.UpdateProperty(ctx, id, propertyID, req.params())
	if err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, propertyBody(property))
}

func (h *VendorPropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}

	if err := h.PropertyService.DeleteProperty(ctx, id, propertyID); err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func (h *VendorPropertiesHandler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}

	var req AddImageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	img, err := h.PropertyService.AddImage(ctx, id, propertyID, req.URL, req.AltText)
	if err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ImageBody{
		ID:      img.ID.String(),
		URL:     img.URL,
		AltText: img.AltText,
	})
}

func (h *VendorPropertiesHandler) HandleRemoveImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}
	imageID, err := idx.Parse(r.PathValue("imageID"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Image not found")
		return
	}

	if err := h.PropertyService.RemoveImage(ctx, id, propertyID, imageID); err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func (h *VendorPropertiesHandler) HandleAddFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}

	var req AddFeatureRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	f, err := h.PropertyService.AddFeature(ctx, id, propertyID, req.Feature)
	if err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, FeatureBody{
		ID:      f.ID.String(),
		Feature: f.Feature,
	})
}

func (h *VendorPropertiesHandler) HandleRemoveFeature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}
	propertyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		return
	}
	featureID, err := idx.Parse(r.PathValue("featureID"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Feature not found")
		return
	}

	if err := h.PropertyService.RemoveFeature(ctx, id, propertyID, featureID); err != nil {
		writePropertyError(w, log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

func writePropertyError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		httpx.WriteError(w, http.StatusNotFound,
			"not_found", "Property not found")
	case errors.Is(err, service.ErrNotPropertyOwner):
		httpx.WriteError(w, http.StatusForbidden,
			"forbidden", "You do not own this property")
	case errors.Is(err, service.ErrInvalidProperty):
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Invalid property details")
	default:
		log.Error("property operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Property operation failed")
	}
}
