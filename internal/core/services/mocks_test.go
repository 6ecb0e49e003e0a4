package services_test

import (
	"context"
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service test suites.

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) ListLocations(ctx context.Context, onlyActive bool) ([]domain.Location, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) SavePet(ctx context.Context, pet domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) FindPetByID(ctx context.Context, petID string) (*domain.Pet, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockPetRepository) FindPetsByIDs(ctx context.Context, petIDs []string) (map[string]domain.Pet, error) {
	args := m.Called(ctx, petIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) ListPets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) UpdatePet(ctx context.Context, pet domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) DeactivatePet(ctx context.Context, petID, reason, userID string, now time.Time) error {
	args := m.Called(ctx, petID, reason, userID, now)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListServices(ctx context.Context, onlyActive bool) ([]domain.Service, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

type MockExtraServiceRepository struct {
	mock.Mock
}

func (m *MockExtraServiceRepository) SaveExtraService(ctx context.Context, extra domain.ExtraService) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

func (m *MockExtraServiceRepository) FindExtraServiceByID(ctx context.Context, extraServiceID string) (*domain.ExtraService, error) {
	args := m.Called(ctx, extraServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtraService), args.Error(1)
}

func (m *MockExtraServiceRepository) FindExtraServicesByIDs(ctx context.Context, extraServiceIDs []string) (map[string]domain.ExtraService, error) {
	args := m.Called(ctx, extraServiceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ExtraService), args.Error(1)
}

func (m *MockExtraServiceRepository) ListExtraServices(ctx context.Context, onlyActive bool) ([]domain.ExtraService, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtraService), args.Error(1)
}

func (m *MockExtraServiceRepository) UpdateExtraService(ctx context.Context, extra domain.ExtraService) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

type MockWeightRateRepository struct {
	mock.Mock
}

func (m *MockWeightRateRepository) SaveWeightRate(ctx context.Context, rate domain.WeightRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockWeightRateRepository) ListWeightRates(ctx context.Context) ([]domain.WeightRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeightRate), args.Error(1)
}

func (m *MockWeightRateRepository) DeleteWeightRate(ctx context.Context, weightRateID string) error {
	args := m.Called(ctx, weightRateID)
	return args.Error(0)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) SaveBooking(ctx context.Context, reservations []domain.Reservation, deposits []domain.FinancialTransaction) error {
	args := m.Called(ctx, reservations, deposits)
	return args.Error(0)
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindReservationsByGroup(ctx context.Context, bookingGroupID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, bookingGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, filter portsrepo.ListReservationsFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) CloseReservation(ctx context.Context, reservation domain.Reservation, payment *domain.FinancialTransaction) error {
	args := m.Called(ctx, reservation, payment)
	return args.Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.FinancialTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SummarizeByKind(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}
