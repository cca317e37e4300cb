package apierrors

import (
	"ialynk-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError maps err to an APIError, logs it and writes the sanitized response.
// Processors have already logged the detailed error; this entry carries the request id
// for correlation.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respond(c, MapError(err))
}

// RespondWithValidationError handles gin binding and validation errors.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	respond(c, ValidationError(err))
}

func respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= 500 && apiErr.cause != nil {
		logger.Error(ctx, "API error response", apiErr.cause)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}
