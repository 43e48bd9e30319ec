package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

// PropertiesHandler serves the public, unauthenticated listing surface.
type PropertiesHandler struct {
	PropertyService *service.PropertyService
}

func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	properties, err := h.PropertyService.ListProperties(ctx)
	if err != nil {
		log.Error("failed to list properties", "err", err)
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

func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound,
			"not_found", "Property not found")
		return
	}

	detail, err := h.PropertyService.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			httpx.WriteError(w, http.StatusNotFound,
				"not_found", "Property not found")
			return
		}
		log.Error("failed to fetch property", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Failed to fetch property")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, propertyDetailResponse(detail))
}
