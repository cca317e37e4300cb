package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeNotFound             = "NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeEmailExists          = "EMAIL_EXISTS"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeContactNotFound      = "CONTACT_NOT_FOUND"
	CodeTicketNotFound       = "TICKET_NOT_FOUND"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidPriority      = "INVALID_PRIORITY"
	CodeConversationNotFound = "CONVERSATION_NOT_FOUND"
	CodeInvalidMessages      = "INVALID_MESSAGES"
	CodeCallNotFound         = "CALL_NOT_FOUND"
	CodeAIServiceError       = "AI_SERVICE_ERROR"
	CodeRealtimeDisabled     = "REALTIME_DISABLED"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeInvalidEventType     = "INVALID_EVENT_TYPE"
	CodeInvalidTimeRange     = "INVALID_TIME_RANGE"
	CodeMessageNotFound      = "MESSAGE_NOT_FOUND"
	CodeInvalidFilter        = "INVALID_FILTER"
	CodeInvalidProvider      = "INVALID_PROVIDER"
	CodePhoneNumberTaken     = "PHONE_NUMBER_TAKEN"
	CodeInvalidPreferences   = "INVALID_PREFERENCES"
)

// APIError is an error that knows how it is rendered to API clients.
// Message is always safe to show; the internal cause is only logged.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 error that keeps the internal cause for logging
func ServiceUnavailable(code, message string, cause error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, cause: cause}
}

// TooManyRequests creates a 429 error for callers over their request budget
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(cause error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		cause:      cause,
	}
}

// ValidationError creates a 400 error from gin binding errors
func ValidationError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidInput,
		Message:    validationMessage(err),
		cause:      err,
	}
}
