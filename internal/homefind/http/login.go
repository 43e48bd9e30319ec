package http

import (
	"errors"
	"net/http"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

type LoginHandler struct {
	SessionService *service.SessionService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	login, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized,
				"invalid_credentials", "Email or password is incorrect")
		case errors.Is(err, service.ErrAccountInactive):
			httpx.WriteError(w, http.StatusForbidden,
				"account_inactive", "Activate your account before logging in")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to log in")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: login.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   login.ExpiresAt,
		User:        userBody(login.User),
	})
}

type LogoutHandler struct {
	SessionService *service.SessionService
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized,
			"invalid_token", "Not authenticated")
		return
	}

	if err := h.SessionService.Logout(ctx, id.SessionID); err != nil {
		log.Error("logout failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Failed to log out")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, StatusResponse{Status: "logged_out"})
}
