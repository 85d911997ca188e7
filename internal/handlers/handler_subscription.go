package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

// subscribe godoc
// @Summary Subscribe to a channel
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel user ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/subscriptions/{channelId} [post]
func (h *subscriptionHandler) subscribe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Subscribe without user in context")
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), userID, c.Param("channelId")); err != nil {
		respondWithError(c, err, "Failed to subscribe")
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Subscribed successfully")
}

// unsubscribe godoc
// @Summary Unsubscribe from a channel
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel user ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/subscriptions/{channelId} [delete]
func (h *subscriptionHandler) unsubscribe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, errUnauthorizedRequest, "Unsubscribe without user in context")
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), userID, c.Param("channelId")); err != nil {
		respondWithError(c, err, "Failed to unsubscribe")
		return
	}
	respondOK(c, http.StatusOK, gin.H{}, "Unsubscribed successfully")
}
