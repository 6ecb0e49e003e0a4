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

type ClientService struct {
	ClientRepository   portsrepo.ClientRepository
	LocationRepository portsrepo.LocationRepository
}

func NewClientService(clientRepo portsrepo.ClientRepository, locationRepo portsrepo.LocationRepository) *ClientService {
	return &ClientService{
		ClientRepository:   clientRepo,
		LocationRepository: locationRepo,
	}
}

// CreateClient registers a pet owner. Consent to data handling is mandatory.
// When no location is given the client is attached to the first active
// branch, once, at creation time.
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.ConsentGiven {
		return nil, fmt.Errorf("%w: client consent is required", apperrors.ErrValidation)
	}

	locationID := req.LocationID
	if locationID == nil {
		locations, err := s.LocationRepository.ListLocations(ctx, true)
		if err != nil {
			logger.Error("Failed to resolve default location", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve default location: %w", err)
		}
		if len(locations) > 0 {
			locationID = &locations[0].LocationID
		}
	}

	now := time.Now()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		LocationID:   locationID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Notes:        req.Notes,
		ConsentGiven: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ClientRepository.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	client, err := s.ClientRepository.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	clients, err := s.ClientRepository.ListClients(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// UpdateClient applies the provided fields. The location link is only
// changed when the request names one explicitly; it is never re-defaulted.
func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.ClientRepository.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.LocationID != nil {
		client.LocationID = req.LocationID
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.ClientRepository.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	logger.Info("Client updated", slog.String("client_id", clientID))
	return client, nil
}
