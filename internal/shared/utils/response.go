package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

// APIResponse is the error envelope. Successful responses carry their payload bare.
type APIResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// BadRequestResponse reports a rejected request body. Only validation errors
// expose their details.
func BadRequestResponse(c *gin.Context, err error) {
	info := ErrorInfo{
		Type:    string(errors.ErrorTypeValidation),
		Message: constants.ErrMsgValidationFailed,
	}
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeValidation {
		info.Message = appErr.Message
		info.Details = appErr.Details
	}
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: &info})
}

// InternalErrorResponse hides the failure kind from the client; callers log it.
func InternalErrorResponse(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: constants.ErrMsgInternalServerError,
		},
	})
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
