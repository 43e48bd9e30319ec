package http

import (
	"errors"
	"net/http"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

type ResetRequestHandler struct {
	ResetService *service.PasswordResetService
}

// ServeHTTP accepts a reset request. The response is identical whether or
// not the address belongs to an account.
func (h *ResetRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	if err := h.ResetService.RequestReset(r.Context(), req.Email); err != nil {
		// RequestReset only fails on internal errors, and even those must
		// not reveal anything about the address.
		slogx.FromContext(r.Context()).Error("reset request failed", "err", err)
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "reset_email_sent"})
}

type ResetConfirmHandler struct {
	ResetService *service.PasswordResetService
}

func (h *ResetConfirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	tok := r.PathValue("token")

	var req ResetConfirmRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	err := h.ResetService.ConfirmReset(r.Context(), uid, tok, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest,
				"weak_password", "Password does not meet the minimum requirements")
		default:
			httpx.WriteError(w, http.StatusBadRequest,
				"invalid_reset_token", "This reset link is invalid or has already been used")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "password_reset"})
}

type PasswordChangeHandler struct {
	SessionService *service.SessionService
}

func (h *PasswordChangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized,
			"invalid_token", "Not authenticated")
		return
	}

	var req PasswordChangeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	err := h.SessionService.ChangePassword(ctx, id.UserID, id.SessionID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized,
				"invalid_credentials", "Current password is incorrect")
		case errors.Is(err, service.ErrWeakPassword):
			httpx.WriteError(w, http.StatusBadRequest,
				"weak_password", "Password does not meet the minimum requirements")
		default:
			log.Error("password change failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to change password")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "password_changed"})
}
