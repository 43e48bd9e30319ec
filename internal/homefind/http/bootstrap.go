package http

import (
	"errors"
	"net/http"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles first-run setup. The endpoint pretends not to exist
// unless a bootstrap token is configured.
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound,
			"not_found", "Not found")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized,
			"unauthorized", "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req BootstrapRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	// 4. Perform bootstrap
	user, err := h.BootstrapService.Bootstrap(ctx, token, service.BootstrapParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteError(w, http.StatusUnauthorized,
				"unauthorized", "System has already been bootstrapped")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized,
				"unauthorized", "Invalid bootstrap token")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest,
				"weak_password", "Password does not meet the minimum requirements")
		case errors.Is(err, service.ErrBootstrapInvalid):
			httpx.WriteError(w, http.StatusBadRequest,
				"invalid_request", "Invalid bootstrap details")
		default:
			log.Error("bootstrap failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to bootstrap system")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, BootstrapResponse{
		User: userBody(user),
	})
}
