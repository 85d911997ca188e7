package middleware

import (
	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// abortWithError stops the chain and writes the standard error envelope.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		StatusCode: status,
		Code:       apperrors.KindForStatus(status),
		Message:    message,
		Success:    false,
	})
}
