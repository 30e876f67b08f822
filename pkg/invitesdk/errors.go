package invitesdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lodgeline/lodgeline/pkg/httpx"
)

// Wire error codes. Business outcomes are part of the API contract; the
// service and the SDK agree on these strings.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeExpired           = "expired"
	ErrorCodeAlreadyUsed       = "already_used"
	ErrorCodeRevoked           = "revoked"
	ErrorCodeEmailMismatch     = "email_mismatch"
	ErrorCodeTenancyExists     = "tenancy_exists"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limited"
	ErrorCodeUnavailable       = "unavailable"
	ErrorCodeServerError       = "server_error"
)

// APIError is the error body every endpoint returns on failure. It is
// used by the server to write responses and by the SDK to represent them,
// so the two cannot drift.
type APIError struct {
	StatusCode int `json:"-"`

	Code    string `json:"error"`
	Message string `json:"message"`

	// UsedByYou accompanies already_used so a client retrying after a
	// timeout can recognise its own earlier success.
	UsedByYou bool `json:"used_by_you,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes the error as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// Retryable reports whether the error is a transient infrastructure fault
// worth retrying. Business outcomes are terminal.
func (e *APIError) Retryable() bool {
	switch e.Code {
	case ErrorCodeUnavailable, ErrorCodeServerError, ErrorCodeRateLimited:
		return true
	}
	return e.StatusCode >= 500
}

// NewAPIError builds a custom error while keeping the standard shape.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
