package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		LocationRepo:     newPgxLocationRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		PetRepo:          newPgxPetRepository(dbPool),
		ServiceRepo:      newPgxServiceRepository(dbPool),
		ExtraServiceRepo: newPgxExtraServiceRepository(dbPool),
		WeightRateRepo:   newPgxWeightRateRepository(dbPool),
		ReservationRepo:  newPgxReservationRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
	}
}
