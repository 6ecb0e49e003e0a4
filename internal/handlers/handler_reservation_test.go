package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/handlers"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
)

// --- Mock ReservationRepository ---
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

var _ portsrepo.ReservationRepository = (*MockReservationRepository)(nil)

// --- Test Suite ---
type ReservationHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockRepo  *MockReservationRepository
	jwtSecret string
}

func (suite *ReservationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "petcare-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockRepo = new(MockReservationRepository)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true,
	}
	svcs := &services.ServiceContainer{
		Reservation: &services.ReservationService{ReservationRepository: suite.mockRepo},
	}
	handlers.RegisterRoutes(suite.router, cfg, svcs)
}

func (suite *ReservationHandlerTestSuite) pendingCloseReservation() *domain.Reservation {
	deposit := decimal.RequireFromString("165.31")
	return &domain.Reservation{
		ReservationID:     uuid.NewString(),
		BookingGroupID:    uuid.NewString(),
		ClientID:          uuid.NewString(),
		PetID:             uuid.NewString(),
		ServiceID:         uuid.NewString(),
		StartDate:         time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		DailyRate:         decimal.RequireFromString("270"),
		Subtotal:          decimal.RequireFromString("810"),
		Tax:               decimal.RequireFromString("129.60"),
		Total:             decimal.RequireFromString("939.60"),
		WithTax:           true,
		DepositAmount:     &deposit,
		RemainingBalance:  decimal.RequireFromString("774.29"),
		Status:            domain.StatusPendingClose,
		LiabilityAccepted: true,
	}
}

func (suite *ReservationHandlerTestSuite) doClose(reservationID, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reservations/"+reservationID+"/close", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReservationHandlerTestSuite) TestCloseReservation_Success() {
	reservation := suite.pendingCloseReservation()
	suite.mockRepo.On("FindReservationByID", mock.Anything, reservation.ReservationID).
		Return(reservation, nil).Once()
	suite.mockRepo.On("CloseReservation", mock.Anything,
		mock.MatchedBy(func(r domain.Reservation) bool {
			return r.Status == domain.StatusCompleted && r.RemainingBalance.IsZero()
		}),
		mock.MatchedBy(func(p *domain.FinancialTransaction) bool {
			return p != nil &&
				p.Kind == domain.Income &&
				p.Category == domain.CategoryFinalPayment &&
				p.Amount.Equal(decimal.RequireFromString("774.29"))
		}),
	).Return(nil).Once()

	w := suite.doClose(reservation.ReservationID, `{"acceptTerms": true, "paymentMethod": "CARD"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StatusCompleted, resp.Status)
	suite.True(resp.RemainingBalance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReservationHandlerTestSuite) TestCloseReservation_TermsRejected() {
	reservation := suite.pendingCloseReservation()
	suite.mockRepo.On("FindReservationByID", mock.Anything, reservation.ReservationID).
		Return(reservation, nil).Once()

	w := suite.doClose(reservation.ReservationID, `{"acceptTerms": false, "paymentMethod": "CARD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseReservation")
}

func (suite *ReservationHandlerTestSuite) TestCloseReservation_AlreadyClosed() {
	reservation := suite.pendingCloseReservation()
	reservation.Status = domain.StatusCompleted
	reservation.RemainingBalance = decimal.Zero
	suite.mockRepo.On("FindReservationByID", mock.Anything, reservation.ReservationID).
		Return(reservation, nil).Once()

	w := suite.doClose(reservation.ReservationID, `{"acceptTerms": true, "paymentMethod": "CARD"}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseReservation")
}

func (suite *ReservationHandlerTestSuite) TestCloseReservation_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reservations/some-id/close", strings.NewReader(`{"acceptTerms": true}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindReservationByID")
}

func TestReservationHandler(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}
