package services

import (
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
)

// ServiceContainer holds instances of all the application services.
type ServiceContainer struct {
	User        *UserService
	GoogleOAuth *GoogleOAuthService
	Location    *LocationService
	Client      *ClientService
	Pet         *PetService
	Catalog     *CatalogService
	Rate        *RateService
	Reservation *ReservationService
	Finance     *FinanceService
}

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		User:        NewUserService(repos.UserRepo, cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Location:    NewLocationService(repos.LocationRepo),
		Client:      NewClientService(repos.ClientRepo, repos.LocationRepo),
		Pet:         NewPetService(repos.PetRepo, repos.ClientRepo),
		Catalog:     NewCatalogService(repos.ServiceRepo, repos.ExtraServiceRepo),
		Rate:        NewRateService(repos.WeightRateRepo),
		Reservation: NewReservationService(
			repos.ReservationRepo,
			repos.ClientRepo,
			repos.PetRepo,
			repos.ServiceRepo,
			repos.ExtraServiceRepo,
			repos.WeightRateRepo,
		),
		Finance: NewFinanceService(repos.TransactionRepo),
	}
}
