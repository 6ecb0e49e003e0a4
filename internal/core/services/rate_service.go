package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

// RateService manages the weight-rate table used for nightly pricing.
type RateService struct {
	WeightRateRepository portsrepo.WeightRateRepository
}

func NewRateService(repo portsrepo.WeightRateRepository) *RateService {
	return &RateService{WeightRateRepository: repo}
}

// CreateWeightRate adds a band to the table. The new band must not overlap
// an existing one so every weight resolves to exactly one rate.
func (s *RateService) CreateWeightRate(ctx context.Context, req dto.CreateWeightRateRequest, userID string) (*domain.WeightRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MinWeight.IsNegative() {
		return nil, fmt.Errorf("%w: min weight must not be negative", apperrors.ErrValidation)
	}
	if req.MaxWeight.LessThanOrEqual(req.MinWeight) {
		return nil, fmt.Errorf("%w: max weight must be greater than min weight", apperrors.ErrValidation)
	}
	if req.BoardingRate.IsNegative() || req.DaycareRate.IsNegative() {
		return nil, fmt.Errorf("%w: rates must not be negative", apperrors.ErrValidation)
	}

	existing, err := s.WeightRateRepository.ListWeightRates(ctx)
	if err != nil {
		logger.Error("Failed to list weight rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list weight rates: %w", err)
	}
	for _, band := range existing {
		if req.MinWeight.LessThan(band.MaxWeight) && band.MinWeight.LessThan(req.MaxWeight) {
			return nil, fmt.Errorf("%w: band [%s, %s] overlaps existing band [%s, %s]",
				apperrors.ErrConflict,
				req.MinWeight.String(), req.MaxWeight.String(),
				band.MinWeight.String(), band.MaxWeight.String())
		}
	}

	now := time.Now()
	rate := domain.WeightRate{
		WeightRateID: uuid.NewString(),
		MinWeight:    req.MinWeight,
		MaxWeight:    req.MaxWeight,
		BoardingRate: req.BoardingRate,
		DaycareRate:  req.DaycareRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.WeightRateRepository.SaveWeightRate(ctx, rate); err != nil {
		logger.Error("Failed to save weight rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save weight rate: %w", err)
	}

	logger.Info("Weight rate created", slog.String("weight_rate_id", rate.WeightRateID))
	return &rate, nil
}

// ListWeightRates returns the table sorted ascending by min weight.
func (s *RateService) ListWeightRates(ctx context.Context) ([]domain.WeightRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	rates, err := s.WeightRateRepository.ListWeightRates(ctx)
	if err != nil {
		logger.Error("Failed to list weight rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list weight rates: %w", err)
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].MinWeight.LessThan(rates[j].MinWeight)
	})
	return rates, nil
}

func (s *RateService) DeleteWeightRate(ctx context.Context, weightRateID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.WeightRateRepository.DeleteWeightRate(ctx, weightRateID); err != nil {
		logger.Error("Failed to delete weight rate", slog.String("error", err.Error()), slog.String("weight_rate_id", weightRateID))
		return err
	}
	logger.Info("Weight rate deleted", slog.String("weight_rate_id", weightRateID))
	return nil
}

// RateTable converts the stored bands into the pricing engine's shape.
// These are the dynamic bands; the built-in table is always consulted first,
// so stored bands only extend coverage beyond it.
func (s *RateService) RateTable(ctx context.Context) ([]pricing.RateBand, error) {
	rates, err := s.ListWeightRates(ctx)
	if err != nil {
		return nil, err
	}
	bands := make([]pricing.RateBand, len(rates))
	for i, r := range rates {
		bands[i] = pricing.RateBand{
			MinWeight:    r.MinWeight,
			MaxWeight:    r.MaxWeight,
			BoardingRate: r.BoardingRate,
			DaycareRate:  r.DaycareRate,
		}
	}
	return bands, nil
}
