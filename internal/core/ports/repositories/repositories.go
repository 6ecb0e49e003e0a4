// Package repositories defines the persistence interfaces the services
// depend on. Implementations live under internal/repositories/database.
package repositories

import (
	"context"
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RepositoryProvider bundles the concrete repositories for injection into
// the service layer.
type RepositoryProvider struct {
	UserRepo         UserRepository
	LocationRepo     LocationRepository
	ClientRepo       ClientRepository
	PetRepo          PetRepository
	ServiceRepo      ServiceRepository
	ExtraServiceRepo ExtraServiceRepository
	WeightRateRepo   WeightRateRepository
	ReservationRepo  ReservationRepository
	TransactionRepo  TransactionRepository
}

// UserRepository persists dashboard operator accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error
}

// LocationRepository persists business branches.
type LocationRepository interface {
	SaveLocation(ctx context.Context, location domain.Location) error
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	ListLocations(ctx context.Context, onlyActive bool) ([]domain.Location, error)
	UpdateLocation(ctx context.Context, location domain.Location) error
}

// ClientRepository persists pet owners.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
}

// PetRepository persists pets and their saved protocols.
type PetRepository interface {
	SavePet(ctx context.Context, pet domain.Pet) error
	FindPetByID(ctx context.Context, petID string) (*domain.Pet, error)
	FindPetsByIDs(ctx context.Context, petIDs []string) (map[string]domain.Pet, error)
	ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error)
	ListPets(ctx context.Context, limit, offset int) ([]domain.Pet, error)
	UpdatePet(ctx context.Context, pet domain.Pet) error
	DeactivatePet(ctx context.Context, petID, reason, userID string, now time.Time) error
}

// ServiceRepository persists care offerings.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context, onlyActive bool) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
}

// ExtraServiceRepository persists reservation add-ons.
type ExtraServiceRepository interface {
	SaveExtraService(ctx context.Context, extra domain.ExtraService) error
	FindExtraServiceByID(ctx context.Context, extraServiceID string) (*domain.ExtraService, error)
	FindExtraServicesByIDs(ctx context.Context, extraServiceIDs []string) (map[string]domain.ExtraService, error)
	ListExtraServices(ctx context.Context, onlyActive bool) ([]domain.ExtraService, error)
	UpdateExtraService(ctx context.Context, extra domain.ExtraService) error
}

// WeightRateRepository persists the externally managed weight-rate table.
type WeightRateRepository interface {
	SaveWeightRate(ctx context.Context, rate domain.WeightRate) error
	ListWeightRates(ctx context.Context) ([]domain.WeightRate, error)
	DeleteWeightRate(ctx context.Context, weightRateID string) error
}

// ListReservationsFilter narrows reservation listings.
type ListReservationsFilter struct {
	ClientID string
	PetID    string
	Status   domain.ReservationStatus
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// ReservationRepository persists reservations. Multi-row booking writes are
// atomic: one DB transaction covers the sibling reservations, their extras
// and the deposit ledger rows.
type ReservationRepository interface {
	SaveBooking(ctx context.Context, reservations []domain.Reservation, deposits []domain.FinancialTransaction) error
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)
	FindReservationsByGroup(ctx context.Context, bookingGroupID string) ([]domain.Reservation, error)
	ListReservations(ctx context.Context, filter ListReservationsFilter) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error
	// CloseReservation writes the final-payment ledger row (when not nil) and
	// the reservation's closed state in one DB transaction.
	CloseReservation(ctx context.Context, reservation domain.Reservation, payment *domain.FinancialTransaction) error
}

// ListTransactionsFilter narrows ledger listings.
type ListTransactionsFilter struct {
	Kind     domain.TransactionKind
	Category string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// TransactionRepository persists the Income/Expense ledger.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error)
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.FinancialTransaction, error)
	UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
	SummarizeByKind(ctx context.Context, from, to time.Time) (income, expense decimal.Decimal, err error)
}
