package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

type LocationService struct {
	LocationRepository portsrepo.LocationRepository
}

func NewLocationService(repo portsrepo.LocationRepository) *LocationService {
	return &LocationService{LocationRepository: repo}
}

func (s *LocationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, userID string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	location := domain.Location{
		LocationID: uuid.NewString(),
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.LocationRepository.SaveLocation(ctx, location); err != nil {
		logger.Error("Failed to save location", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	logger.Info("Location created", slog.String("location_id", location.LocationID))
	return &location, nil
}

func (s *LocationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	location, err := s.LocationRepository.FindLocationByID(ctx, locationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find location", slog.String("error", err.Error()), slog.String("location_id", locationID))
		}
		return nil, err
	}
	return location, nil
}

func (s *LocationService) ListLocations(ctx context.Context, onlyActive bool) ([]domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	locations, err := s.LocationRepository.ListLocations(ctx, onlyActive)
	if err != nil {
		logger.Error("Failed to list locations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		return []domain.Location{}, nil
	}
	return locations, nil
}

func (s *LocationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, userID string) (*domain.Location, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	location, err := s.LocationRepository.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = *req.Address
	}
	if req.Phone != nil {
		location.Phone = *req.Phone
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	location.LastUpdatedAt = time.Now()
	location.LastUpdatedBy = userID

	if err := s.LocationRepository.UpdateLocation(ctx, *location); err != nil {
		logger.Error("Failed to update location", slog.String("error", err.Error()), slog.String("location_id", locationID))
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	logger.Info("Location updated", slog.String("location_id", locationID))
	return location, nil
}
