package accountsdk

import "fmt"

// Error codes shared by the server and the client.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeInviteExpired      = "invite_expired"
	ErrorCodeUserExists         = "user_exists"
	ErrorCodeInvitationExists   = "invitation_exists"
	ErrorCodeAccessDenied       = "access_denied"
	ErrorCodeInsufficientRole   = "insufficient_role"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeLastAdmin          = "last_admin"
	ErrorCodeBootstrapDone      = "bootstrap_done"
	ErrorCodeNotifyFailed       = "notification_failed"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error the SDK returns for any non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Code is the machine-readable error code from the response body
	Code string

	// Description is the human-readable description from the response body
	Description string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsCode reports whether err is an APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}
