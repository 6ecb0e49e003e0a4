package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReservationServiceTestSuite struct {
	suite.Suite
	mockReservations *MockReservationRepository
	mockClients      *MockClientRepository
	mockPets         *MockPetRepository
	mockServices     *MockServiceRepository
	mockExtras       *MockExtraServiceRepository
	mockRates        *MockWeightRateRepository
	service          *services.ReservationService

	client   *domain.Client
	boarding *domain.Service
	daycare  *domain.Service
	petBig   domain.Pet
	petSmall domain.Pet
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.mockReservations = new(MockReservationRepository)
	s.mockClients = new(MockClientRepository)
	s.mockPets = new(MockPetRepository)
	s.mockServices = new(MockServiceRepository)
	s.mockExtras = new(MockExtraServiceRepository)
	s.mockRates = new(MockWeightRateRepository)
	s.service = services.NewReservationService(
		s.mockReservations, s.mockClients, s.mockPets,
		s.mockServices, s.mockExtras, s.mockRates,
	)

	s.client = &domain.Client{ClientID: uuid.NewString(), FirstName: "Laura", ConsentGiven: true}
	s.boarding = &domain.Service{ServiceID: uuid.NewString(), Name: "Hotel Canino", BasePrice: decimal.NewFromInt(300), IsActive: true}
	s.daycare = &domain.Service{ServiceID: uuid.NewString(), Name: "Guardería", BasePrice: decimal.NewFromInt(200), IsActive: true}
	s.petBig = domain.Pet{PetID: uuid.NewString(), ClientID: s.client.ClientID, Name: "Rocky", Weight: decimal.NewFromInt(7), IsActive: true}
	s.petSmall = domain.Pet{PetID: uuid.NewString(), ClientID: s.client.ClientID, Name: "Mia", Weight: decimal.NewFromInt(3), IsActive: true}
}

func (s *ReservationServiceTestSuite) bookingRequest() dto.CreateBookingRequest {
	deposit := decimal.NewFromInt(300)
	method := domain.PaymentCash
	return dto.CreateBookingRequest{
		ClientID:  s.client.ClientID,
		ServiceID: s.boarding.ServiceID,
		StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Pets: []dto.BookingPetRequest{
			{PetID: s.petBig.PetID},
			{PetID: s.petSmall.PetID},
		},
		WithTax:       true,
		DepositAmount: &deposit,
		DepositMethod: &method,
	}
}

func (s *ReservationServiceTestSuite) expectLookups() {
	s.mockClients.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil)
	s.mockServices.On("FindServiceByID", mock.Anything, s.boarding.ServiceID).Return(s.boarding, nil)
	s.mockPets.On("FindPetsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Pet{
		s.petBig.PetID:   s.petBig,
		s.petSmall.PetID: s.petSmall,
	}, nil)
	s.mockRates.On("ListWeightRates", mock.Anything).Return([]domain.WeightRate{}, nil)
}

// Two pets over three nights with tax: 7kg at 270 gives 939.60, 3kg at 220
// gives 765.60. A 300 deposit splits 165.31 / 134.69 and both reservations
// plus both deposit rows go through one SaveBooking call.
func (s *ReservationServiceTestSuite) TestCreateBooking_MultiPet() {
	ctx := context.Background()
	s.expectLookups()

	var savedReservations []domain.Reservation
	var savedDeposits []domain.FinancialTransaction
	s.mockReservations.On("SaveBooking", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedReservations = args.Get(1).([]domain.Reservation)
			savedDeposits = args.Get(2).([]domain.FinancialTransaction)
		}).
		Return(nil).Once()

	reservations, combined, err := s.service.CreateBooking(ctx, s.bookingRequest(), "op-1")

	s.Require().NoError(err)
	s.Require().Len(reservations, 2)
	s.True(combined.Total.Equal(decimal.RequireFromString("1705.20")), "combined total %s", combined.Total)
	s.Equal(reservations[0].BookingGroupID, reservations[1].BookingGroupID)

	s.Require().Len(savedReservations, 2)
	first, second := savedReservations[0], savedReservations[1]
	s.Equal(domain.StatusConfirmed, first.Status)
	s.True(first.DailyRate.Equal(decimal.NewFromInt(270)))
	s.True(first.Total.Equal(decimal.RequireFromString("939.60")), "total %s", first.Total)
	s.True(first.DepositAmount.Equal(decimal.RequireFromString("165.31")), "share %s", first.DepositAmount)
	s.True(first.RemainingBalance.Equal(decimal.RequireFromString("774.29")), "balance %s", first.RemainingBalance)
	s.True(second.DailyRate.Equal(decimal.NewFromInt(220)))
	s.True(second.Total.Equal(decimal.RequireFromString("765.60")), "total %s", second.Total)
	s.True(second.DepositAmount.Equal(decimal.RequireFromString("134.69")), "share %s", second.DepositAmount)
	s.True(second.RemainingBalance.Equal(decimal.RequireFromString("630.91")), "balance %s", second.RemainingBalance)

	s.Require().Len(savedDeposits, 2)
	depositSum := decimal.Zero
	for _, d := range savedDeposits {
		s.Equal(domain.Income, d.Kind)
		s.Equal(domain.CategoryDeposit, d.Category)
		s.Require().NotNil(d.ReservationID)
		depositSum = depositSum.Add(d.Amount)
	}
	s.True(depositSum.Equal(decimal.NewFromInt(300)))

	s.mockReservations.AssertExpectations(s.T())
}

func (s *ReservationServiceTestSuite) TestCreateBooking_DaycareForcesSingleDay() {
	ctx := context.Background()
	s.mockClients.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil)
	s.mockServices.On("FindServiceByID", mock.Anything, s.daycare.ServiceID).Return(s.daycare, nil)
	s.mockPets.On("FindPetsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Pet{
		s.petBig.PetID: s.petBig,
	}, nil)
	s.mockRates.On("ListWeightRates", mock.Anything).Return([]domain.WeightRate{}, nil)
	s.mockReservations.On("SaveBooking", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	req := dto.CreateBookingRequest{
		ClientID:  s.client.ClientID,
		ServiceID: s.daycare.ServiceID,
		StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		Pets:      []dto.BookingPetRequest{{PetID: s.petBig.PetID}},
	}

	reservations, combined, err := s.service.CreateBooking(ctx, req, "op-1")

	s.Require().NoError(err)
	s.Require().Len(reservations, 1)
	s.True(reservations[0].EndDate.Equal(reservations[0].StartDate))
	s.Equal(1, combined.Days)
	s.True(reservations[0].DailyRate.Equal(decimal.NewFromInt(210)))
	s.True(reservations[0].Total.Equal(decimal.NewFromInt(210)))
}

func (s *ReservationServiceTestSuite) TestCreateBooking_ConsentMissing() {
	ctx := context.Background()
	noConsent := &domain.Client{ClientID: s.client.ClientID, ConsentGiven: false}
	s.mockClients.On("FindClientByID", mock.Anything, s.client.ClientID).Return(noConsent, nil)

	_, _, err := s.service.CreateBooking(ctx, s.bookingRequest(), "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockReservations.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCreateBooking_DepositWithoutMethod() {
	ctx := context.Background()
	s.mockClients.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil)
	s.mockServices.On("FindServiceByID", mock.Anything, s.boarding.ServiceID).Return(s.boarding, nil)

	req := s.bookingRequest()
	req.DepositMethod = nil

	_, _, err := s.service.CreateBooking(ctx, req, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockReservations.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestQuoteBooking_PersistsNothing() {
	ctx := context.Background()
	s.expectLookups()

	quotes, combined, err := s.service.QuoteBooking(ctx, s.bookingRequest())

	s.Require().NoError(err)
	s.Require().Len(quotes, 2)
	s.True(quotes[0].DepositShare.Equal(decimal.RequireFromString("165.31")))
	s.True(quotes[1].DepositShare.Equal(decimal.RequireFromString("134.69")))
	s.True(combined.Total.Equal(decimal.RequireFromString("1705.20")), "combined total %s", combined.Total)
	s.mockReservations.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything, mock.Anything)
}

// Stored bands only extend coverage; weights the built-in table already
// covers keep their built-in rate even when a stored band overlaps them.
func (s *ReservationServiceTestSuite) TestQuoteBooking_BuiltInBandsWinOverStored() {
	ctx := context.Background()
	s.mockClients.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil)
	s.mockServices.On("FindServiceByID", mock.Anything, s.boarding.ServiceID).Return(s.boarding, nil)
	s.mockPets.On("FindPetsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Pet{
		s.petBig.PetID: s.petBig,
	}, nil)
	s.mockRates.On("ListWeightRates", mock.Anything).Return([]domain.WeightRate{
		{
			WeightRateID: uuid.NewString(),
			MinWeight:    decimal.Zero,
			MaxWeight:    decimal.NewFromInt(50),
			BoardingRate: decimal.NewFromInt(999),
			DaycareRate:  decimal.NewFromInt(999),
		},
	}, nil)

	req := s.bookingRequest()
	req.Pets = []dto.BookingPetRequest{{PetID: s.petBig.PetID}}

	quotes, _, err := s.service.QuoteBooking(ctx, req)

	s.Require().NoError(err)
	s.Require().Len(quotes, 1)
	s.True(quotes[0].DailyRate.Equal(decimal.NewFromInt(270)), "daily rate %s", quotes[0].DailyRate)
}

func (s *ReservationServiceTestSuite) pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ReservationID:    uuid.NewString(),
		ClientID:         s.client.ClientID,
		PetID:            s.petBig.PetID,
		ServiceID:        s.boarding.ServiceID,
		Status:           domain.StatusConfirmed,
		Total:            decimal.RequireFromString("939.60"),
		RemainingBalance: decimal.RequireFromString("774.29"),
	}
}

func (s *ReservationServiceTestSuite) TestCloseReservation_TermsRejected() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	_, err := s.service.CloseReservation(ctx, reservation.ReservationID, dto.CloseReservationRequest{AcceptTerms: false}, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, pricing.ErrTermsNotAccepted)
	s.mockReservations.AssertNotCalled(s.T(), "CloseReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCloseReservation_MethodRequiredForBalance() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	_, err := s.service.CloseReservation(ctx, reservation.ReservationID, dto.CloseReservationRequest{AcceptTerms: true}, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, pricing.ErrPaymentMethodRequired)
	s.mockReservations.AssertNotCalled(s.T(), "CloseReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCloseReservation_SettlesBalance() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	method := domain.PaymentCard
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	var closed domain.Reservation
	var payment *domain.FinancialTransaction
	s.mockReservations.On("CloseReservation", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			closed = args.Get(1).(domain.Reservation)
			payment = args.Get(2).(*domain.FinancialTransaction)
		}).
		Return(nil).Once()

	result, err := s.service.CloseReservation(ctx, reservation.ReservationID, dto.CloseReservationRequest{AcceptTerms: true, PaymentMethod: &method}, "op-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusCompleted, result.Status)
	s.True(result.RemainingBalance.IsZero())
	s.True(result.LiabilityAccepted)

	s.Equal(domain.StatusCompleted, closed.Status)
	s.Require().NotNil(payment)
	s.Equal(domain.Income, payment.Kind)
	s.Equal(domain.CategoryFinalPayment, payment.Category)
	s.True(payment.Amount.Equal(decimal.RequireFromString("774.29")))
	s.Require().NotNil(payment.PaymentMethod)
	s.Equal(domain.PaymentCard, *payment.PaymentMethod)
	s.mockReservations.AssertExpectations(s.T())
}

func (s *ReservationServiceTestSuite) TestCloseReservation_ZeroBalanceNeedsNoMethod() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	reservation.RemainingBalance = decimal.Zero
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	var payment *domain.FinancialTransaction = &domain.FinancialTransaction{}
	s.mockReservations.On("CloseReservation", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			payment, _ = args.Get(2).(*domain.FinancialTransaction)
		}).
		Return(nil).Once()

	result, err := s.service.CloseReservation(ctx, reservation.ReservationID, dto.CloseReservationRequest{AcceptTerms: true}, "op-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusCompleted, result.Status)
	s.Nil(payment)
}

func (s *ReservationServiceTestSuite) TestCloseReservation_TerminalAbsorbing() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	reservation.Status = domain.StatusCompleted
	method := domain.PaymentCash
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	_, err := s.service.CloseReservation(ctx, reservation.ReservationID, dto.CloseReservationRequest{AcceptTerms: true, PaymentMethod: &method}, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, pricing.ErrTerminalStatus)
	s.mockReservations.AssertNotCalled(s.T(), "CloseReservation", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestDeliverReservation_MovesToPendingClose() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)
	s.mockReservations.On("UpdateReservation", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := s.service.DeliverReservation(ctx, reservation.ReservationID, dto.DeliverReservationRequest{AcceptTerms: true}, "op-1")

	s.Require().NoError(err)
	s.Equal(domain.StatusPendingClose, result.Status)
	s.True(result.LiabilityAccepted)
	s.Require().NotNil(result.DeliveredAt)
	s.True(result.RemainingBalance.Equal(decimal.RequireFromString("774.29")))
}

func (s *ReservationServiceTestSuite) TestDeliverReservation_TermsRejected() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	_, err := s.service.DeliverReservation(ctx, reservation.ReservationID, dto.DeliverReservationRequest{AcceptTerms: false}, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, pricing.ErrTermsNotAccepted)
	s.mockReservations.AssertNotCalled(s.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCancelReservation_TerminalRejected() {
	ctx := context.Background()
	reservation := s.pendingReservation()
	reservation.Status = domain.StatusCancelled
	s.mockReservations.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil)

	_, err := s.service.CancelReservation(ctx, reservation.ReservationID, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockReservations.AssertNotCalled(s.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
