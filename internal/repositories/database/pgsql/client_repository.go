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

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{pool: pool}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

const clientColumns = `client_id, location_id, first_name, last_name, phone, email, address, notes, consent_given, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ClientID,
		&client.LocationID,
		&client.FirstName,
		&client.LastName,
		&client.Phone,
		&client.Email,
		&client.Address,
		&client.Notes,
		&client.ConsentGiven,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.LastUpdatedAt,
		&client.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan client row: %w", err)
	}
	return &client, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		client.ClientID,
		client.LocationID,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Email,
		client.Address,
		client.Notes,
		client.ConsentGiven,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return scanClient(r.pool.QueryRow(ctx, query, clientID))
}

func (r *PgxClientRepository) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY first_name, last_name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET location_id = $1, first_name = $2, last_name = $3, phone = $4, email = $5, address = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE client_id = $10;
	`
	tag, err := r.pool.Exec(ctx, query,
		client.LocationID,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Email,
		client.Address,
		client.Notes,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
		client.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
