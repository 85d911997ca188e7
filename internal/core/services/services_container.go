package services

import (
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/vidtube_backend/internal/core/ports/services"
	"github.com/SscSPs/vidtube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	storage portssvc.ObjectStorage,
	events portssvc.EventPublisher,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Token issuing has no dependencies besides configuration; the session controller builds on it.
	container.Token = NewTokenService(cfg)
	container.Session = NewSessionService(cfg, repos.UserRepo, container.Token, events)

	container.User = NewUserService(repos.UserRepo, storage, events)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Subscription = NewSubscriptionService(repos.UserRepo, repos.SubscriptionRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
	_ portssvc.SessionSvcFacade      = (*sessionService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.ProfileSvcFacade      = (*profileService)(nil)
	_ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)
)
