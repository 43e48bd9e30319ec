package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

// AdminHandler carries superadmin-only operations.
type AdminHandler struct {
	AccountService *service.AccountService
}

func (h *AdminHandler) HandleResendActivation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "User not found")
		return
	}

	if err := h.AccountService.ResendActivation(ctx, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound,
				"not_found", "User not found")
		case errors.Is(err, service.ErrAlreadyActive):
			httpx.WriteError(w, http.StatusConflict,
				"already_active", "This account is already active")
		default:
			log.Error("failed to resend activation", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to resend activation email")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "activation_sent"})
}
