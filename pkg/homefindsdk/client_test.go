package homefindsdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterDecodesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/v1/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(RegisterResponse{
			UserID:    "6a9f2c7e-0000-0000-0000-000000000000",
			Email:     req.Email,
			Username:  req.Username,
			Role:      "customer",
			EmailSent: true,
		})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL + "/")
	resp, err := client.Register(t.Context(), RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Equal(t, "customer", resp.Role)
	require.True(t, resp.EmailSent)
}

func TestErrorResponsesAreTyped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:            "email_taken",
			ErrorDescription: "An account with this email already exists",
		})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	_, err := client.Register(t.Context(), RegisterRequest{Email: "dup@example.com"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, ErrorCodeEmailTaken, apiErr.Code)
	require.True(t, IsCode(err, ErrorCodeEmailTaken))
}

func TestNonJSONErrorFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	_, err := client.ListProperties(t.Context())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestSessionSendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProfileResponse{
			User: UserBody{Username: "alice", Role: "customer"},
		})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	session := client.NewSessionFromToken("test-token")

	profile, err := session.GetProfile(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice", profile.User.Username)
}
