package pgsql

import (
	portsrepo "github.com/SscSPs/vidtube_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ProfileRepo:      newProfileRepository(dbPool),
		SubscriptionRepo: newSubscriptionRepository(dbPool),
	}
}
