package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/vidtube_backend/cmd/docs"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
	"github.com/SscSPs/vidtube_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services, posthog); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures /api/v1/users. Registration, login and refresh are public;
// everything else runs behind the auth middleware.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	auth := newAuthHandler(services.Session, cfg, posthog)
	users := newUserHandler(services.User, uploadSaver{dir: cfg.UploadTempDir, maxSize: cfg.MaxUploadSizeBytes}, posthog)
	channels := newChannelHandler(services.Profile)
	subs := newSubscriptionHandler(services.Subscription)

	public := r.Group("/api/v1/users")
	{
		public.POST("/register", users.registerUser)
		public.POST("/loginUser", middleware.RateLimit(loginLimiter), auth.login)
		public.POST("/refresh-token", auth.refreshToken)
	}

	protected := r.Group("/api/v1/users", middleware.AuthMiddleware(services.Session, cfg.AccessTokenCookieName))
	{
		protected.POST("/logoutUser", auth.logout)
		protected.POST("/change-password", auth.changePassword)
		protected.GET("/current-user", users.getCurrentUser)
		protected.PATCH("/update-account", users.updateAccount)
		protected.PATCH("/avatar-update", users.updateAvatar)
		protected.PATCH("/coverImage-update", users.updateCoverImage)
		protected.GET("/channel-profile/:username", channels.getChannelProfile)
		protected.GET("/watch-history", channels.getWatchHistory)
		protected.POST("/watch-history/:videoId", channels.addToWatchHistory)
		protected.POST("/subscriptions/:channelId", subs.subscribe)
		protected.DELETE("/subscriptions/:channelId", subs.unsubscribe)
	}

	slog.Debug("API routes registered", slog.Int("routes", len(r.Routes())))
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
