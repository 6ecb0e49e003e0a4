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

type PgxServiceRepository struct {
	pool *pgxpool.Pool
}

func newPgxServiceRepository(pool *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{pool: pool}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

const serviceColumns = `service_id, name, description, base_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanService(row pgx.Row) (*domain.Service, error) {
	var service domain.Service
	err := row.Scan(
		&service.ServiceID,
		&service.Name,
		&service.Description,
		&service.BasePrice,
		&service.IsActive,
		&service.CreatedAt,
		&service.CreatedBy,
		&service.LastUpdatedAt,
		&service.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan service row: %w", err)
	}
	return &service, nil
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
		INSERT INTO services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		service.ServiceID,
		service.Name,
		service.Description,
		service.BasePrice,
		service.IsActive,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save service %s: %w", service.ServiceID, err)
	}
	return nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = $1;`
	return scanService(r.pool.QueryRow(ctx, query, serviceID))
}

func (r *PgxServiceRepository) ListServices(ctx context.Context, onlyActive bool) ([]domain.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE ($1 = false OR is_active = true)
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services
		SET name = $1, description = $2, base_price = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE service_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		service.Name,
		service.Description,
		service.BasePrice,
		service.IsActive,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
		service.ServiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxExtraServiceRepository struct {
	pool *pgxpool.Pool
}

func newPgxExtraServiceRepository(pool *pgxpool.Pool) portsrepo.ExtraServiceRepository {
	return &PgxExtraServiceRepository{pool: pool}
}

var _ portsrepo.ExtraServiceRepository = (*PgxExtraServiceRepository)(nil)

const extraServiceColumns = `extra_service_id, name, price, per_day, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanExtraService(row pgx.Row) (*domain.ExtraService, error) {
	var extra domain.ExtraService
	err := row.Scan(
		&extra.ExtraServiceID,
		&extra.Name,
		&extra.Price,
		&extra.PerDay,
		&extra.IsActive,
		&extra.CreatedAt,
		&extra.CreatedBy,
		&extra.LastUpdatedAt,
		&extra.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan extra service row: %w", err)
	}
	return &extra, nil
}

func (r *PgxExtraServiceRepository) SaveExtraService(ctx context.Context, extra domain.ExtraService) error {
	query := `
		INSERT INTO extra_services (` + extraServiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		extra.ExtraServiceID,
		extra.Name,
		extra.Price,
		extra.PerDay,
		extra.IsActive,
		extra.CreatedAt,
		extra.CreatedBy,
		extra.LastUpdatedAt,
		extra.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save extra service %s: %w", extra.ExtraServiceID, err)
	}
	return nil
}

func (r *PgxExtraServiceRepository) FindExtraServiceByID(ctx context.Context, extraServiceID string) (*domain.ExtraService, error) {
	query := `SELECT ` + extraServiceColumns + ` FROM extra_services WHERE extra_service_id = $1;`
	return scanExtraService(r.pool.QueryRow(ctx, query, extraServiceID))
}

func (r *PgxExtraServiceRepository) FindExtraServicesByIDs(ctx context.Context, extraServiceIDs []string) (map[string]domain.ExtraService, error) {
	if len(extraServiceIDs) == 0 {
		return map[string]domain.ExtraService{}, nil
	}
	query := `SELECT ` + extraServiceColumns + ` FROM extra_services WHERE extra_service_id = ANY($1);`
	rows, err := r.pool.Query(ctx, query, extraServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra services by IDs: %w", err)
	}
	defer rows.Close()

	extrasMap := make(map[string]domain.ExtraService)
	for rows.Next() {
		extra, err := scanExtraService(rows)
		if err != nil {
			return nil, err
		}
		extrasMap[extra.ExtraServiceID] = *extra
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra service rows: %w", err)
	}
	return extrasMap, nil
}

func (r *PgxExtraServiceRepository) ListExtraServices(ctx context.Context, onlyActive bool) ([]domain.ExtraService, error) {
	query := `
		SELECT ` + extraServiceColumns + `
		FROM extra_services
		WHERE ($1 = false OR is_active = true)
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra services: %w", err)
	}
	defer rows.Close()

	var extras []domain.ExtraService
	for rows.Next() {
		extra, err := scanExtraService(rows)
		if err != nil {
			return nil, err
		}
		extras = append(extras, *extra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra service rows: %w", err)
	}
	return extras, nil
}

func (r *PgxExtraServiceRepository) UpdateExtraService(ctx context.Context, extra domain.ExtraService) error {
	query := `
		UPDATE extra_services
		SET name = $1, price = $2, per_day = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE extra_service_id = $7;
	`
	tag, err := r.pool.Exec(ctx, query,
		extra.Name,
		extra.Price,
		extra.PerDay,
		extra.IsActive,
		extra.LastUpdatedAt,
		extra.LastUpdatedBy,
		extra.ExtraServiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update extra service %s: %w", extra.ExtraServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
