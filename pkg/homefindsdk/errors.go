package homefindsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the HomeFind API in the "error" field.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeAccountInactive   = "account_inactive"
	ErrorCodeEmailTaken        = "email_taken"
	ErrorCodeUsernameTaken     = "username_taken"
	ErrorCodePhoneTaken        = "phone_taken"
	ErrorCodeWeakPassword      = "weak_password"
	ErrorCodeActivationFailed  = "activation_failed"
	ErrorCodeAlreadyActive     = "already_active"
	ErrorCodeInvalidResetToken = "invalid_reset_token"
	ErrorCodeRoleMismatch      = "role_mismatch"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is the typed form of the service's error envelope. Every
// non-2xx response from the API is returned to callers as *APIError.
type APIError struct {
	// StatusCode is the HTTP status the server responded with.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "email_taken").
	Code string `json:"error"`

	// Description is the human-readable explanation.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an *APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

// parseErrorResponse turns a non-2xx response body into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
