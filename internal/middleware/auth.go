package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates access tokens.
// The token is read from the access cookie first, then from a Bearer Authorization header.
func AuthMiddleware(sessionSvc portssvc.SessionSvcFacade, accessCookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, source := extractAccessToken(c, accessCookieName)
		if tokenString == "" {
			logger.Warn("Access token missing")
			abortWithError(c, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		user, err := sessionSvc.VerifyAccess(c.Request.Context(), tokenString)
		if err != nil {
			// Cause is logged but never returned to the client.
			logger.Warn("Invalid access token", slog.String("source", source), slog.String("error", err.Error()))
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired access token")
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctx := WithUser(c.Request.Context(), user)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(loggerCtxKey), enrichedLogger)

		c.Next()
	}
}

func extractAccessToken(c *gin.Context, cookieName string) (string, string) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, "cookie"
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ""
	}
	return strings.TrimSpace(parts[1]), "header"
}
