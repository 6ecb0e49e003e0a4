package services_test

import (
	"context"
	"testing"

	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRates *MockWeightRateRepository
	service   *services.RateService
}

func (s *RateServiceTestSuite) SetupTest() {
	s.mockRates = new(MockWeightRateRepository)
	s.service = services.NewRateService(s.mockRates)
}

func (s *RateServiceTestSuite) TestCreateWeightRate_Success() {
	ctx := context.Background()
	s.mockRates.On("ListWeightRates", ctx).Return([]domain.WeightRate{}, nil).Once()
	s.mockRates.On("SaveWeightRate", ctx, mock.AnythingOfType("domain.WeightRate")).Return(nil).Once()

	req := dto.CreateWeightRateRequest{
		MinWeight:    decimal.Zero,
		MaxWeight:    decimal.NewFromInt(5),
		BoardingRate: decimal.NewFromInt(220),
		DaycareRate:  decimal.NewFromInt(180),
	}

	rate, err := s.service.CreateWeightRate(ctx, req, "op-1")

	s.Require().NoError(err)
	s.NotEmpty(rate.WeightRateID)
	s.mockRates.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestCreateWeightRate_OverlapRejected() {
	ctx := context.Background()
	existing := []domain.WeightRate{{
		MinWeight:    decimal.Zero,
		MaxWeight:    decimal.NewFromInt(5),
		BoardingRate: decimal.NewFromInt(220),
		DaycareRate:  decimal.NewFromInt(180),
	}}
	s.mockRates.On("ListWeightRates", ctx).Return(existing, nil).Once()

	req := dto.CreateWeightRateRequest{
		MinWeight:    decimal.NewFromInt(4),
		MaxWeight:    decimal.NewFromInt(10),
		BoardingRate: decimal.NewFromInt(270),
		DaycareRate:  decimal.NewFromInt(210),
	}

	rate, err := s.service.CreateWeightRate(ctx, req, "op-1")

	s.Require().Error(err)
	s.Nil(rate)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockRates.AssertNotCalled(s.T(), "SaveWeightRate", mock.Anything, mock.Anything)
}

// Bands that only touch at the boundary do not overlap.
func (s *RateServiceTestSuite) TestCreateWeightRate_AdjacentBandsAllowed() {
	ctx := context.Background()
	existing := []domain.WeightRate{{
		MinWeight:    decimal.Zero,
		MaxWeight:    decimal.NewFromInt(5),
		BoardingRate: decimal.NewFromInt(220),
		DaycareRate:  decimal.NewFromInt(180),
	}}
	s.mockRates.On("ListWeightRates", ctx).Return(existing, nil).Once()
	s.mockRates.On("SaveWeightRate", ctx, mock.AnythingOfType("domain.WeightRate")).Return(nil).Once()

	req := dto.CreateWeightRateRequest{
		MinWeight:    decimal.NewFromInt(5),
		MaxWeight:    decimal.NewFromInt(10),
		BoardingRate: decimal.NewFromInt(270),
		DaycareRate:  decimal.NewFromInt(210),
	}

	_, err := s.service.CreateWeightRate(ctx, req, "op-1")

	s.Require().NoError(err)
	s.mockRates.AssertExpectations(s.T())
}

func (s *RateServiceTestSuite) TestCreateWeightRate_InvertedRangeRejected() {
	ctx := context.Background()
	req := dto.CreateWeightRateRequest{
		MinWeight:    decimal.NewFromInt(10),
		MaxWeight:    decimal.NewFromInt(5),
		BoardingRate: decimal.NewFromInt(270),
		DaycareRate:  decimal.NewFromInt(210),
	}

	_, err := s.service.CreateWeightRate(ctx, req, "op-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RateServiceTestSuite) TestListWeightRates_SortedAscending() {
	ctx := context.Background()
	unsorted := []domain.WeightRate{
		{MinWeight: decimal.NewFromInt(10), MaxWeight: decimal.NewFromInt(20)},
		{MinWeight: decimal.Zero, MaxWeight: decimal.NewFromInt(5)},
		{MinWeight: decimal.NewFromInt(5), MaxWeight: decimal.NewFromInt(10)},
	}
	s.mockRates.On("ListWeightRates", ctx).Return(unsorted, nil).Once()

	rates, err := s.service.ListWeightRates(ctx)

	s.Require().NoError(err)
	s.Require().Len(rates, 3)
	s.True(rates[0].MinWeight.IsZero())
	s.True(rates[2].MinWeight.Equal(decimal.NewFromInt(10)))
}

func (s *RateServiceTestSuite) TestRateTable_ConvertsStoredBands() {
	ctx := context.Background()
	stored := []domain.WeightRate{{
		MinWeight:    decimal.NewFromInt(20),
		MaxWeight:    decimal.NewFromInt(40),
		BoardingRate: decimal.NewFromInt(350),
		DaycareRate:  decimal.NewFromInt(280),
	}}
	s.mockRates.On("ListWeightRates", ctx).Return(stored, nil).Once()

	bands, err := s.service.RateTable(ctx)

	s.Require().NoError(err)
	s.Require().Len(bands, 1)
	s.True(bands[0].MinWeight.Equal(decimal.NewFromInt(20)))
	s.True(bands[0].MaxWeight.Equal(decimal.NewFromInt(40)))
	s.True(bands[0].BoardingRate.Equal(decimal.NewFromInt(350)))
	s.True(bands[0].DaycareRate.Equal(decimal.NewFromInt(280)))
}

func (s *RateServiceTestSuite) TestRateTable_EmptyStoreGivesNoBands() {
	ctx := context.Background()
	s.mockRates.On("ListWeightRates", ctx).Return([]domain.WeightRate{}, nil).Once()

	bands, err := s.service.RateTable(ctx)

	s.Require().NoError(err)
	s.Empty(bands)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
