package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lagoshomes/homefind/internal/homefind/service"
	"github.com/lagoshomes/homefind/pkg/httpx"
	"github.com/lagoshomes/homefind/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}

	profile, err := h.ProfileService.GetProfile(ctx, id.UserID)
	if err != nil {
		log.Error("failed to load profile", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Failed to load profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profileResponse(profile))
}

func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := identityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "Not authenticated")
		return
	}

	var req ProfileUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "Malformed JSON body")
		return
	}

	// Identity fields first: absent fields keep their stored values.
	if req.FirstName != nil || req.LastName != nil || req.PhoneNumber != nil {
		current, err := h.ProfileService.GetProfile(ctx, id.UserID)
		if err != nil {
			log.Error("failed to load profile", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to update profile")
			return
		}
		first := current.User.FirstName
		last := current.User.LastName
		phone := current.User.PhoneNumber
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		if req.PhoneNumber != nil {
			phone = *req.PhoneNumber
		}
		if err := h.ProfileService.UpdateIdentity(ctx, id.UserID, first, last, phone); err != nil {
			if errors.Is(err, service.ErrInvalidRegistration) {
				httpx.WriteError(w, http.StatusConflict,
					"phone_taken", "This phone number is already in use")
				return
			}
			log.Error("failed to update identity", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError,
				"server_error", "Failed to update profile")
			return
		}
	}

	if req.Vendor != nil {
		_, err := h.ProfileService.UpdateVendorProfile(ctx, id.UserID,
			req.Vendor.CompanyName, req.Vendor.BusinessAddress, req.Vendor.Bio)
		if err != nil {
			writeProfileUpdateError(w, log, err)
			return
		}
	}
	if req.Customer != nil {
		_, err := h.ProfileService.UpdateCustomerProfile(ctx, id.UserID,
			req.Customer.DateOfBirth, req.Customer.Occupation,
			req.Customer.PreferredLocation, req.Customer.BudgetMin, req.Customer.BudgetMax)
		if err != nil {
			writeProfileUpdateError(w, log, err)
			return
		}
	}

	profile, err := h.ProfileService.GetProfile(ctx, id.UserID)
	if err != nil {
		log.Error("failed to reload profile", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError,
			"server_error", "Failed to load profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResponse(profile))
}

func writeProfileUpdateError(w http.ResponseWriter, log *slog.Logger, err error) {
	if errors.Is(err, service.ErrRoleMismatch) {
		httpx.WriteError(w, http.StatusForbidden,
			"role_mismatch", "This profile section does not match your account role")
		return
	}
	log.Error("failed to update profile", "err", err)
	httpx.WriteError(w, http.StatusInternalServerError,
		"server_error", "Failed to update profile")
}
