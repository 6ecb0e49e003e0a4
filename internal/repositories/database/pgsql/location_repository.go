package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
)

type PgxLocationRepository struct {
	pool *pgxpool.Pool
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepository {
	return &PgxLocationRepository{pool: pool}
}

var _ portsrepo.LocationRepository = (*PgxLocationRepository)(nil)

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	query := `
		INSERT INTO locations (location_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		location.LocationID,
		location.Name,
		location.Address,
		location.Phone,
		location.IsActive,
		location.CreatedAt,
		location.CreatedBy,
		location.LastUpdatedAt,
		location.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save location %s: %w", location.LocationID, err)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `
		SELECT location_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM locations
		WHERE location_id = $1;
	`
	var location domain.Location
	err := r.pool.QueryRow(ctx, query, locationID).Scan(
		&location.LocationID,
		&location.Name,
		&location.Address,
		&location.Phone,
		&location.IsActive,
		&location.CreatedAt,
		&location.CreatedBy,
		&location.LastUpdatedAt,
		&location.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	return &location, nil
}

func (r *PgxLocationRepository) ListLocations(ctx context.Context, onlyActive bool) ([]domain.Location, error) {
	query := `
		SELECT location_id, name, address, phone, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM locations
		WHERE ($1 = false OR is_active = true)
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(
			&location.LocationID,
			&location.Name,
			&location.Address,
			&location.Phone,
			&location.IsActive,
			&location.CreatedAt,
			&location.CreatedBy,
			&location.LastUpdatedAt,
			&location.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}
	return locations, nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	query := `
		UPDATE locations
		SET name = $1, address = $2, phone = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE location_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		location.Name,
		location.Address,
		location.Phone,
		location.IsActive,
		location.LastUpdatedAt,
		location.LastUpdatedBy,
		location.LocationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", location.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
