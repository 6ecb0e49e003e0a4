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

type PetService struct {
	PetRepository    portsrepo.PetRepository
	ClientRepository portsrepo.ClientRepository
}

func NewPetService(petRepo portsrepo.PetRepository, clientRepo portsrepo.ClientRepository) *PetService {
	return &PetService{
		PetRepository:    petRepo,
		ClientRepository: clientRepo,
	}
}

// CreatePet registers a pet under an existing client. Weight is free-form
// text; a value that does not parse is stored as zero and the stay will
// price through the service base rate instead of a weight band.
func (s *PetService) CreatePet(ctx context.Context, req dto.CreatePetRequest, userID string) (*domain.Pet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.ClientRepository.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, err
	}

	now := time.Now()
	pet := domain.Pet{
		PetID:       uuid.NewString(),
		ClientID:    req.ClientID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Weight:      pricing.ParseWeight(req.Weight),
		BirthDate:   req.BirthDate,
		Feeding:     req.Feeding.ToFeedingProtocol(),
		SpecialCare: req.SpecialCare.ToSpecialCare(),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.PetRepository.SavePet(ctx, pet); err != nil {
		logger.Error("Failed to save pet", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save pet: %w", err)
	}

	logger.Info("Pet created", slog.String("pet_id", pet.PetID), slog.String("client_id", pet.ClientID))
	return &pet, nil
}

func (s *PetService) GetPetByID(ctx context.Context, petID string) (*domain.Pet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	pet, err := s.PetRepository.FindPetByID(ctx, petID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find pet", slog.String("error", err.Error()), slog.String("pet_id", petID))
		}
		return nil, err
	}
	return pet, nil
}

func (s *PetService) ListPets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	pets, err := s.PetRepository.ListPets(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list pets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	if pets == nil {
		return []domain.Pet{}, nil
	}
	return pets, nil
}

func (s *PetService) ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	pets, err := s.PetRepository.ListPetsByClient(ctx, clientID)
	if err != nil {
		logger.Error("Failed to list pets for client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list pets for client: %w", err)
	}
	if pets == nil {
		return []domain.Pet{}, nil
	}
	return pets, nil
}

func (s *PetService) UpdatePet(ctx context.Context, petID string, req dto.UpdatePetRequest, userID string) (*domain.Pet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pet, err := s.PetRepository.FindPetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Weight != nil {
		pet.Weight = pricing.ParseWeight(*req.Weight)
	}
	if req.BirthDate != nil {
		pet.BirthDate = req.BirthDate
	}
	if req.Feeding != nil {
		pet.Feeding = req.Feeding.ToFeedingProtocol()
	}
	if req.SpecialCare != nil {
		pet.SpecialCare = req.SpecialCare.ToSpecialCare()
	}
	pet.LastUpdatedAt = time.Now()
	pet.LastUpdatedBy = userID

	if err := s.PetRepository.UpdatePet(ctx, *pet); err != nil {
		logger.Error("Failed to update pet", slog.String("error", err.Error()), slog.String("pet_id", petID))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	logger.Info("Pet updated", slog.String("pet_id", petID))
	return pet, nil
}

// DeactivatePet retires a pet from the active roster. A reason is required
// so the record explains itself later (deceased, moved away, owner request).
func (s *PetService) DeactivatePet(ctx context.Context, petID, reason, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return fmt.Errorf("%w: inactivation reason is required", apperrors.ErrValidation)
	}

	if err := s.PetRepository.DeactivatePet(ctx, petID, reason, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate pet", slog.String("error", err.Error()), slog.String("pet_id", petID))
		}
		return err
	}

	logger.Info("Pet deactivated", slog.String("pet_id", petID), slog.String("reason", reason))
	return nil
}
