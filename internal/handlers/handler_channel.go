package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// channelHandler serves the aggregated channel and watch-history views.
type channelHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newChannelHandler(ps portssvc.ProfileSvcFacade) *channelHandler {
	return &channelHandler{profileService: ps}
}

// getChannelProfile godoc
// @Summary Get a channel profile
// @Description Returns the channel's public fields with subscriber counts and whether the caller is subscribed.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=domain.ChannelProfile}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/channel-profile/{username} [get]
func (h *channelHandler) getChannelProfile(c *gin.Context) {
	viewerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Channel profile without user in context")
		return
	}

	profile, err := h.profileService.GetChannelProfile(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch channel profile")
		return
	}
	respondOK(c, http.StatusOK, profile, "User channel fetched successfully")
}

// getWatchHistory godoc
// @Summary Get watch history
// @Description Returns watched videos in stored order, each with its owner's public fields.
// @Tags channels
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.WatchHistoryEntry}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/watch-history [get]
func (h *channelHandler) getWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Watch history without user in context")
		return
	}

	history, err := h.profileService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch watch history")
		return
	}
	respondOK(c, http.StatusOK, history, "Watch history fetched successfully")
}

// addToWatchHistory godoc
// @Summary Record a watched video
// @Tags channels
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/watch-history/{videoId} [post]
func (h *channelHandler) addToWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Watch history update without user in context")
		return
	}

	if err := h.profileService.AddToWatchHistory(c.Request.Context(), userID, c.Param("videoId")); err != nil {
		respondWithError(c, err, "Failed to add video to watch history")
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Video added to watch history")
}
