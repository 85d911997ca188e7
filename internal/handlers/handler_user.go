package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/SscSPs/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

var errUnauthorizedRequest = apperrors.NewUnauthorizedError("Unauthorized request")

// userHandler handles HTTP requests related to the user's own account.
type userHandler struct {
	userService portssvc.UserSvcFacade
	uploads     uploadSaver
	posthog     *utils.PosthogClientWrapper
}

func newUserHandler(us portssvc.UserSvcFacade, uploads uploadSaver, ph *utils.PosthogClientWrapper) *userHandler {
	return &userHandler{userService: us, uploads: uploads, posthog: ph}
}

// registerUser godoc
// @Summary Register a new user
// @Description Creates an account from a multipart form. The avatar file is required, the cover image is optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param fullName formData string true "Full name"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/register [post]
func (h *userHandler) registerUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "All fields are required")
		return
	}

	avatarPath, err := h.uploads.save(c, "avatar")
	if err != nil {
		respondWithError(c, err, "Avatar upload rejected")
		return
	}
	coverPath, err := h.uploads.save(c, "coverImage")
	if err != nil {
		discard(avatarPath)
		respondWithError(c, err, "Cover image upload rejected")
		return
	}
	// Storage removes files it uploads; this catches the ones rejected earlier.
	defer discard(avatarPath, coverPath)

	user, err := h.userService.RegisterUser(c.Request.Context(), req, avatarPath, coverPath)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("new_user_id", user.UserID))
	middleware.PosthogEvent(c, h.posthog, user.UserID, "user_registered", nil)
	respondOK(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// getCurrentUser godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/current-user [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Current user without user in context")
		return
	}

	user, err := h.userService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to load current user")
		return
	}
	respondOK(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// updateAccount godoc
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UpdateAccountRequest true "Full name and email"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/update-account [patch]
func (h *userHandler) updateAccount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Account update without user in context")
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "All fields are required")
		return
	}

	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update account")
		return
	}
	respondOK(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully")
}

// updateAvatar godoc
// @Summary Replace the avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/avatar-update [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", h.userService.UpdateAvatar, "Avatar image updated successfully")
}

// updateCoverImage godoc
// @Summary Replace the cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/coverImage-update [patch]
func (h *userHandler) updateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

func (h *userHandler) replaceImage(c *gin.Context, field string, update func(ctx context.Context, userID, localPath string) (*domain.User, error), okMsg string) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Image update without user in context")
		return
	}

	path, err := h.uploads.save(c, field)
	if err != nil {
		respondWithError(c, err, "Image upload rejected")
		return
	}
	defer discard(path)

	user, err := update(c.Request.Context(), userID, path)
	if err != nil {
		respondWithError(c, err, "Failed to update image")
		return
	}
	respondOK(c, http.StatusOK, dto.ToUserResponse(user), okMsg)
}
