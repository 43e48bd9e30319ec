package homefindsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the HomeFind listing service. It covers the
// unauthenticated operations and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new HomeFind API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Bootstrap performs first-run setup, creating the superadmin account.
// The token must match the server's configured bootstrap token; the call
// fails once any user exists.
func (c *SDKClient) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*BootstrapResponse, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/v1/bootstrap"), bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Bootstrap-Token", token)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register creates a new account. The account starts inactive; the server
// emails an activation link, and EmailSent on the response reports whether
// that delivery succeeded.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// Activate follows an activation link's uid and token segments.
func (c *SDKClient) Activate(ctx context.Context, uid, token string) error {
	path := fmt.Sprintf("/activate/%s/%s/", uid, token)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// Login authenticates with email and password and returns a Session
// carrying the bearer token for the authenticated endpoints.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", body)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &out), nil
}

// NewSessionFromToken creates a session from an existing access token,
// e.g. one stored from a previous login.
func (c *SDKClient) NewSessionFromToken(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

// RequestPasswordReset asks the server to email a reset link. It succeeds
// whether or not the address belongs to an account.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/password/reset", body)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ConfirmPasswordReset follows a reset link's uid and token segments and
// sets the new password. All active sessions are revoked on success.
func (c *SDKClient) ConfirmPasswordReset(ctx context.Context, uid, token, newPassword string) error {
	path := fmt.Sprintf("/password/reset/confirm/%s/%s/", uid, token)
	body := map[string]string{"new_password": newPassword}
	resp, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
