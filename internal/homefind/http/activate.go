package http

import (
	"net/http"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
)

type ActivateHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles the activation link from the signup email. The response
// never says which part of the link was wrong.
func (h *ActivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	tok := r.PathValue("token")

	if err := h.AccountService.Activate(r.Context(), uid, tok); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"activation_failed", "This activation link is invalid or has already been used")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "activated"})
}
