package apperrors

import (
	"github.com/gin-gonic/gin"

	"tutorlift_backend/internal/logger"
)

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Unknown error types
// are wrapped as internal errors so no raw error ever reaches a client.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.FromContext(c.Request.Context()).Error("server error", "error", appErr.Error())
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
