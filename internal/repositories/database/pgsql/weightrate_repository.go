package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
)

type PgxWeightRateRepository struct {
	pool *pgxpool.Pool
}

func newPgxWeightRateRepository(pool *pgxpool.Pool) portsrepo.WeightRateRepository {
	return &PgxWeightRateRepository{pool: pool}
}

var _ portsrepo.WeightRateRepository = (*PgxWeightRateRepository)(nil)

func (r *PgxWeightRateRepository) SaveWeightRate(ctx context.Context, rate domain.WeightRate) error {
	query := `
		INSERT INTO weight_rates (weight_rate_id, min_weight, max_weight, boarding_rate, daycare_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		rate.WeightRateID,
		rate.MinWeight,
		rate.MaxWeight,
		rate.BoardingRate,
		rate.DaycareRate,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save weight rate %s: %w", rate.WeightRateID, err)
	}
	return nil
}

func (r *PgxWeightRateRepository) ListWeightRates(ctx context.Context) ([]domain.WeightRate, error) {
	query := `
		SELECT weight_rate_id, min_weight, max_weight, boarding_rate, daycare_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM weight_rates
		ORDER BY min_weight;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.WeightRate
	for rows.Next() {
		var rate domain.WeightRate
		if err := rows.Scan(
			&rate.WeightRateID,
			&rate.MinWeight,
			&rate.MaxWeight,
			&rate.BoardingRate,
			&rate.DaycareRate,
			&rate.CreatedAt,
			&rate.CreatedBy,
			&rate.LastUpdatedAt,
			&rate.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan weight rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weight rate rows: %w", err)
	}
	return rates, nil
}

func (r *PgxWeightRateRepository) DeleteWeightRate(ctx context.Context, weightRateID string) error {
	query := `DELETE FROM weight_rates WHERE weight_rate_id = $1;`
	tag, err := r.pool.Exec(ctx, query, weightRateID)
	if err != nil {
		return fmt.Errorf("failed to delete weight rate %s: %w", weightRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
