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
	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
)

// CatalogService manages the care offerings and the add-on catalog.
type CatalogService struct {
	ServiceRepository      portsrepo.ServiceRepository
	ExtraServiceRepository portsrepo.ExtraServiceRepository
}

func NewCatalogService(serviceRepo portsrepo.ServiceRepository, extraRepo portsrepo.ExtraServiceRepository) *CatalogService {
	return &CatalogService{
		ServiceRepository:      serviceRepo,
		ExtraServiceRepository: extraRepo,
	}
}

func (s *CatalogService) CreateService(ctx context.Context, req dto.CreateServiceRequest, userID string) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: base price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ServiceRepository.SaveService(ctx, service); err != nil {
		logger.Error("Failed to save service", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	logger.Info("Service created", slog.String("service_id", service.ServiceID), slog.String("name", service.Name))
	return &service, nil
}

func (s *CatalogService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	service, err := s.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find service", slog.String("error", err.Error()), slog.String("service_id", serviceID))
		}
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) ListServices(ctx context.Context, onlyActive bool) ([]domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	services, err := s.ServiceRepository.ListServices(ctx, onlyActive)
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		return []domain.Service{}, nil
	}
	return services, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest, userID string) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	service, err := s.ServiceRepository.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.BasePrice != nil {
		if req.BasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: base price must not be negative", apperrors.ErrValidation)
		}
		service.BasePrice = *req.BasePrice
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = userID

	if err := s.ServiceRepository.UpdateService(ctx, *service); err != nil {
		logger.Error("Failed to update service", slog.String("error", err.Error()), slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	logger.Info("Service updated", slog.String("service_id", serviceID))
	return service, nil
}

func (s *CatalogService) CreateExtraService(ctx context.Context, req dto.CreateExtraServiceRequest, userID string) (*domain.ExtraService, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	extra := domain.ExtraService{
		ExtraServiceID: uuid.NewString(),
		Name:           req.Name,
		Price:          req.Price,
		// Legacy catalog rows encode per-day pricing in the name.
		PerDay:   req.PerDay || pricing.PerDayName(req.Name),
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ExtraServiceRepository.SaveExtraService(ctx, extra); err != nil {
		logger.Error("Failed to save extra service", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save extra service: %w", err)
	}

	logger.Info("Extra service created", slog.String("extra_service_id", extra.ExtraServiceID), slog.String("name", extra.Name))
	return &extra, nil
}

func (s *CatalogService) ListExtraServices(ctx context.Context, onlyActive bool) ([]domain.ExtraService, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	extras, err := s.ExtraServiceRepository.ListExtraServices(ctx, onlyActive)
	if err != nil {
		logger.Error("Failed to list extra services", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list extra services: %w", err)
	}
	if extras == nil {
		return []domain.ExtraService{}, nil
	}
	return extras, nil
}

func (s *CatalogService) UpdateExtraService(ctx context.Context, extraServiceID string, req dto.UpdateExtraServiceRequest, userID string) (*domain.ExtraService, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	extra, err := s.ExtraServiceRepository.FindExtraServiceByID(ctx, extraServiceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		extra.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		extra.Price = *req.Price
	}
	if req.PerDay != nil {
		extra.PerDay = *req.PerDay
	}
	if req.IsActive != nil {
		extra.IsActive = *req.IsActive
	}
	extra.LastUpdatedAt = time.Now()
	extra.LastUpdatedBy = userID

	if err := s.ExtraServiceRepository.UpdateExtraService(ctx, *extra); err != nil {
		logger.Error("Failed to update extra service", slog.String("error", err.Error()), slog.String("extra_service_id", extraServiceID))
		return nil, fmt.Errorf("failed to update extra service: %w", err)
	}

	logger.Info("Extra service updated", slog.String("extra_service_id", extraServiceID))
	return extra, nil
}
