package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
)

type PgxPetRepository struct {
	pool *pgxpool.Pool
}

func newPgxPetRepository(pool *pgxpool.Pool) portsrepo.PetRepository {
	return &PgxPetRepository{pool: pool}
}

var _ portsrepo.PetRepository = (*PgxPetRepository)(nil)

const petColumns = `pet_id, client_id, name, species, breed, weight, birth_date, feeding, special_care, is_active, inactivation_reason, created_at, created_by, last_updated_at, last_updated_by`

// Feeding protocols and special-care notes are stored as JSONB documents;
// their shape changes more often than the pet row itself.
func marshalJSONB(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var pet domain.Pet
	var feedingRaw, specialCareRaw []byte
	err := row.Scan(
		&pet.PetID,
		&pet.ClientID,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&pet.Weight,
		&pet.BirthDate,
		&feedingRaw,
		&specialCareRaw,
		&pet.IsActive,
		&pet.InactivationReason,
		&pet.CreatedAt,
		&pet.CreatedBy,
		&pet.LastUpdatedAt,
		&pet.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan pet row: %w", err)
	}
	if len(feedingRaw) > 0 {
		pet.Feeding = &domain.FeedingProtocol{}
		if err := json.Unmarshal(feedingRaw, pet.Feeding); err != nil {
			return nil, fmt.Errorf("failed to decode feeding protocol for pet %s: %w", pet.PetID, err)
		}
	}
	if len(specialCareRaw) > 0 {
		pet.SpecialCare = &domain.SpecialCare{}
		if err := json.Unmarshal(specialCareRaw, pet.SpecialCare); err != nil {
			return nil, fmt.Errorf("failed to decode special care for pet %s: %w", pet.PetID, err)
		}
	}
	return &pet, nil
}

func (r *PgxPetRepository) SavePet(ctx context.Context, pet domain.Pet) error {
	feedingRaw, err := marshalJSONB(pet.Feeding)
	if err != nil {
		return fmt.Errorf("failed to encode feeding protocol: %w", err)
	}
	specialCareRaw, err := marshalJSONB(pet.SpecialCare)
	if err != nil {
		return fmt.Errorf("failed to encode special care: %w", err)
	}

	query := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.pool.Exec(ctx, query,
		pet.PetID,
		pet.ClientID,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.Weight,
		pet.BirthDate,
		feedingRaw,
		specialCareRaw,
		pet.IsActive,
		pet.InactivationReason,
		pet.CreatedAt,
		pet.CreatedBy,
		pet.LastUpdatedAt,
		pet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pet %s: %w", pet.PetID, err)
	}
	return nil
}

func (r *PgxPetRepository) FindPetByID(ctx context.Context, petID string) (*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE pet_id = $1;`
	return scanPet(r.pool.QueryRow(ctx, query, petID))
}

func (r *PgxPetRepository) FindPetsByIDs(ctx context.Context, petIDs []string) (map[string]domain.Pet, error) {
	if len(petIDs) == 0 {
		return map[string]domain.Pet{}, nil
	}
	query := `SELECT ` + petColumns + ` FROM pets WHERE pet_id = ANY($1);`
	rows, err := r.pool.Query(ctx, query, petIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query pets by IDs: %w", err)
	}
	defer rows.Close()

	petsMap := make(map[string]domain.Pet)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		petsMap[pet.PetID] = *pet
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pet rows: %w", err)
	}
	return petsMap, nil
}

func (r *PgxPetRepository) listPets(ctx context.Context, query string, args ...any) ([]domain.Pet, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	var pets []domain.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pet rows: %w", err)
	}
	return pets, nil
}

func (r *PgxPetRepository) ListPetsByClient(ctx context.Context, clientID string) ([]domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE client_id = $1 ORDER BY name;`
	return r.listPets(ctx, query, clientID)
}

func (r *PgxPetRepository) ListPets(ctx context.Context, limit, offset int) ([]domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets ORDER BY name LIMIT $1 OFFSET $2;`
	return r.listPets(ctx, query, limit, offset)
}

func (r *PgxPetRepository) UpdatePet(ctx context.Context, pet domain.Pet) error {
	feedingRaw, err := marshalJSONB(pet.Feeding)
	if err != nil {
		return fmt.Errorf("failed to encode feeding protocol: %w", err)
	}
	specialCareRaw, err := marshalJSONB(pet.SpecialCare)
	if err != nil {
		return fmt.Errorf("failed to encode special care: %w", err)
	}

	query := `
		UPDATE pets
		SET name = $1, species = $2, breed = $3, weight = $4, birth_date = $5, feeding = $6, special_care = $7, last_updated_at = $8, last_updated_by = $9
		WHERE pet_id = $10;
	`
	tag, err := r.pool.Exec(ctx, query,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.Weight,
		pet.BirthDate,
		feedingRaw,
		specialCareRaw,
		pet.LastUpdatedAt,
		pet.LastUpdatedBy,
		pet.PetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet %s: %w", pet.PetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPetRepository) DeactivatePet(ctx context.Context, petID, reason, userID string, now time.Time) error {
	query := `
		UPDATE pets
		SET is_active = false, inactivation_reason = $1, last_updated_at = $2, last_updated_by = $3
		WHERE pet_id = $4 AND is_active = true;
	`
	tag, err := r.pool.Exec(ctx, query, reason, now, userID, petID)
	if err != nil {
		return fmt.Errorf("failed to deactivate pet %s: %w", petID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
