package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps err to its status and writes the error envelope.
// The cause is logged; only the public message reaches the client.
func respondWithError(c *gin.Context, err error, logMsg string) {
	status := apperrors.HTTPStatus(err)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		StatusCode: status,
		Code:       apperrors.Kind(err),
		Message:    apperrors.PublicMessage(err),
		Success:    false,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, apperrors.NewValidationError(message), "Invalid request")
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewAPIResponse(status, data, message))
}
