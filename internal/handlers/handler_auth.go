package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
	"github.com/SscSPs/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, logout, token refresh and password change.
type authHandler struct {
	sessionService portssvc.SessionSvcFacade
	cfg            *config.Config
	posthog        *utils.PosthogClientWrapper
}

func newAuthHandler(ss portssvc.SessionSvcFacade, cfg *config.Config, ph *utils.PosthogClientWrapper) *authHandler {
	return &authHandler{sessionService: ss, cfg: cfg, posthog: ph}
}

func (h *authHandler) setAuthCookies(c *gin.Context, accessToken string, accessExp time.Time, refreshToken string, refreshExp time.Time) {
	http.SetCookie(c.Writer, h.cookie(h.cfg.AccessTokenCookieName, accessToken, int(time.Until(accessExp).Seconds())))
	http.SetCookie(c.Writer, h.cookie(h.cfg.RefreshTokenCookieName, refreshToken, int(time.Until(refreshExp).Seconds())))
}

func (h *authHandler) clearAuthCookies(c *gin.Context) {
	http.SetCookie(c.Writer, h.cookie(h.cfg.AccessTokenCookieName, "", -1))
	http.SetCookie(c.Writer, h.cookie(h.cfg.RefreshTokenCookieName, "", -1))
}

func (h *authHandler) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.cfg.CookieSameSite,
	}
}

// login godoc
// @Summary Log in
// @Description Verifies credentials, issues an access/refresh pair and sets both as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /users/loginUser [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and password are required")
		return
	}

	result, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err, "Login failed")
		return
	}

	h.setAuthCookies(c, result.Tokens.AccessToken, result.Tokens.AccessTokenExpiresAt, result.Tokens.RefreshToken, result.Tokens.RefreshTokenExpiresAt)
	middleware.PosthogEvent(c, h.posthog, result.User.UserID, "user_logged_in", nil)
	respondOK(c, http.StatusOK, dto.ToLoginResponse(result), "User logged in successfully")
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and both auth cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/logoutUser [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		respondWithError(c, errUnauthorizedRequest, "Logout without user in context")
		return
	}

	if err := h.sessionService.Logout(c.Request.Context(), userID); err != nil {
		respondWithError(c, err, "Logout failed")
		return
	}

	h.clearAuthCookies(c)
	respondOK(c, http.StatusOK, gin.H{}, "User logged out")
}

// refreshToken godoc
// @Summary Rotate tokens
// @Description Exchanges the current refresh token (cookie first, then body) for a new pair. The old token stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	incoming, _ := c.Cookie(h.cfg.RefreshTokenCookieName)
	if incoming == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring unparsable refresh body", slog.String("error", err.Error()))
		}
		incoming = req.RefreshToken
	}

	pair, err := h.sessionService.Refresh(c.Request.Context(), incoming)
	if err != nil {
		respondWithError(c, err, "Token refresh failed")
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.AccessTokenExpiresAt, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	respondOK(c, http.StatusOK, dto.ToRefreshTokenResponse(pair), "Access token refreshed")
}

// changePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Missing field or wrong old password"
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Password change without user in context")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Old and new password are required")
		return
	}

	if err := h.sessionService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondWithError(c, err, "Password change failed")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "", "user_password_changed", nil)
	respondOK(c, http.StatusOK, gin.H{}, "Password changed successfully")
}
