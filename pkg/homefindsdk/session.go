package homefindsdk

import (
	"context"
	"net/http"
	"time"
)

// Session is an authenticated client bound to one login's bearer token.
// Sessions are not refreshed automatically: when the token expires the
// next call fails with an *APIError carrying ErrorCodeInvalidToken and
// the caller should log in again.
type Session struct {
	client *SDKClient

	accessToken string
	expiresAt   time.Time
	user        UserBody
}

// newSession creates a session from a successful login response.
func newSession(client *SDKClient, login *LoginResponse) *Session {
	return &Session{
		client:      client,
		accessToken: login.AccessToken,
		expiresAt:   login.ExpiresAt,
		user:        login.User,
	}
}

// AccessToken returns the session's bearer token.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// ExpiresAt returns when the access token expires. Zero for sessions
// created with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// User returns the account identity captured at login. Empty for sessions
// created with NewSessionFromToken; use GetProfile for fresh data.
func (s *Session) User() UserBody {
	return s.user
}

// Logout revokes the server-side session, invalidating the token.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ChangePassword sets a new password after verifying the old one. All
// other sessions for the account are revoked; this one stays valid.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/password/change", body)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// GetProfile returns the account identity and its role profile.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateProfile applies a partial identity update and, when the matching
// section is present, replaces the role profile.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/profile", req)
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ResendActivation re-sends the activation email for an inactive account.
// Requires the superadmin role.
func (s *Session) ResendActivation(ctx context.Context, userID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/admin/users/"+userID+"/resend-activation", nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
