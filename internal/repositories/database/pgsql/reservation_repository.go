package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
)

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepository {
	return &PgxReservationRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationRepository = (*PgxReservationRepository)(nil)

const reservationColumns = `reservation_id, booking_group_id, client_id, pet_id, service_id, start_date, end_date, feeding, belongings, daily_rate, subtotal, tax, total, with_tax, deposit_amount, deposit_method, remaining_balance, status, liability_accepted, delivered_at, created_at, created_by, last_updated_at, last_updated_by`

func insertReservation(ctx context.Context, db execQuerier, r domain.Reservation) error {
	feedingRaw, err := marshalJSONB(r.Feeding)
	if err != nil {
		return fmt.Errorf("failed to encode feeding snapshot: %w", err)
	}
	var depositMethod *string
	if r.DepositMethod != nil {
		m := string(*r.DepositMethod)
		depositMethod = &m
	}

	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = db.Exec(ctx, query,
		r.ReservationID,
		r.BookingGroupID,
		r.ClientID,
		r.PetID,
		r.ServiceID,
		r.StartDate,
		r.EndDate,
		feedingRaw,
		r.Belongings,
		r.DailyRate,
		r.Subtotal,
		r.Tax,
		r.Total,
		r.WithTax,
		r.DepositAmount,
		depositMethod,
		r.RemainingBalance,
		string(r.Status),
		r.LiabilityAccepted,
		r.DeliveredAt,
		r.CreatedAt,
		r.CreatedBy,
		r.LastUpdatedAt,
		r.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation %s: %w", r.ReservationID, err)
	}
	return nil
}

func insertReservationExtras(ctx context.Context, db execQuerier, extras []domain.ReservationExtra) error {
	query := `
		INSERT INTO reservation_extras (reservation_extra_id, reservation_id, extra_service_id, name, price, per_day, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, ex := range extras {
		if _, err := db.Exec(ctx, query,
			ex.ReservationExtraID,
			ex.ReservationID,
			ex.ExtraServiceID,
			ex.Name,
			ex.Price,
			ex.PerDay,
			ex.Quantity,
		); err != nil {
			return fmt.Errorf("failed to save reservation extra %s: %w", ex.ReservationExtraID, err)
		}
	}
	return nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var r domain.Reservation
	var feedingRaw []byte
	var depositMethod *string
	var status string
	err := row.Scan(
		&r.ReservationID,
		&r.BookingGroupID,
		&r.ClientID,
		&r.PetID,
		&r.ServiceID,
		&r.StartDate,
		&r.EndDate,
		&feedingRaw,
		&r.Belongings,
		&r.DailyRate,
		&r.Subtotal,
		&r.Tax,
		&r.Total,
		&r.WithTax,
		&r.DepositAmount,
		&depositMethod,
		&r.RemainingBalance,
		&status,
		&r.LiabilityAccepted,
		&r.DeliveredAt,
		&r.CreatedAt,
		&r.CreatedBy,
		&r.LastUpdatedAt,
		&r.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan reservation row: %w", err)
	}
	r.Status = domain.ReservationStatus(status)
	if depositMethod != nil {
		m := domain.PaymentMethod(*depositMethod)
		r.DepositMethod = &m
	}
	if len(feedingRaw) > 0 {
		r.Feeding = &domain.FeedingProtocol{}
		if err := json.Unmarshal(feedingRaw, r.Feeding); err != nil {
			return nil, fmt.Errorf("failed to decode feeding snapshot for reservation %s: %w", r.ReservationID, err)
		}
	}
	return &r, nil
}

// SaveBooking writes the sibling reservations, their extras and the deposit
// ledger rows in one transaction so a failed write never leaves a partial
// booking behind.
func (repo *PgxReservationRepository) SaveBooking(ctx context.Context, reservations []domain.Reservation, deposits []domain.FinancialTransaction) error {
	tx, err := repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer repo.Rollback(ctx, tx)

	for _, r := range reservations {
		if err := insertReservation(ctx, tx, r); err != nil {
			return err
		}
		if err := insertReservationExtras(ctx, tx, r.Extras); err != nil {
			return err
		}
	}
	for _, d := range deposits {
		if err := insertTransaction(ctx, tx, d); err != nil {
			return err
		}
	}

	return repo.Commit(ctx, tx)
}

func (repo *PgxReservationRepository) loadExtras(ctx context.Context, reservationIDs []string) (map[string][]domain.ReservationExtra, error) {
	if len(reservationIDs) == 0 {
		return map[string][]domain.ReservationExtra{}, nil
	}
	query := `
		SELECT reservation_extra_id, reservation_id, extra_service_id, name, price, per_day, quantity
		FROM reservation_extras
		WHERE reservation_id = ANY($1)
		ORDER BY name;
	`
	rows, err := repo.Pool.Query(ctx, query, reservationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservation extras: %w", err)
	}
	defer rows.Close()

	extrasByReservation := make(map[string][]domain.ReservationExtra)
	for rows.Next() {
		var ex domain.ReservationExtra
		if err := rows.Scan(
			&ex.ReservationExtraID,
			&ex.ReservationID,
			&ex.ExtraServiceID,
			&ex.Name,
			&ex.Price,
			&ex.PerDay,
			&ex.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation extra row: %w", err)
		}
		extrasByReservation[ex.ReservationID] = append(extrasByReservation[ex.ReservationID], ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation extra rows: %w", err)
	}
	return extrasByReservation, nil
}

func (repo *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_id = $1;`
	reservation, err := scanReservation(repo.Pool.QueryRow(ctx, query, reservationID))
	if err != nil {
		return nil, err
	}
	extras, err := repo.loadExtras(ctx, []string{reservationID})
	if err != nil {
		return nil, err
	}
	reservation.Extras = extras[reservationID]
	return reservation, nil
}

func (repo *PgxReservationRepository) collectReservations(ctx context.Context, rows pgx.Rows) ([]domain.Reservation, error) {
	defer rows.Close()

	var reservations []domain.Reservation
	var ids []string
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *reservation)
		ids = append(ids, reservation.ReservationID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservation rows: %w", err)
	}

	extras, err := repo.loadExtras(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		reservations[i].Extras = extras[reservations[i].ReservationID]
	}
	return reservations, nil
}

func (repo *PgxReservationRepository) FindReservationsByGroup(ctx context.Context, bookingGroupID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE booking_group_id = $1 ORDER BY created_at;`
	rows, err := repo.Pool.Query(ctx, query, bookingGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations by group: %w", err)
	}
	return repo.collectReservations(ctx, rows)
}

func (repo *PgxReservationRepository) ListReservations(ctx context.Context, filter portsrepo.ListReservationsFilter) ([]domain.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE ($1 = '' OR client_id = $1)
		  AND ($2 = '' OR pet_id = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4::timestamptz IS NULL OR end_date >= $4)
		  AND ($5::timestamptz IS NULL OR start_date <= $5)
		ORDER BY start_date DESC
		LIMIT $6 OFFSET $7;
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	rows, err := repo.Pool.Query(ctx, query,
		filter.ClientID,
		filter.PetID,
		string(filter.Status),
		filter.From,
		filter.To,
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return repo.collectReservations(ctx, rows)
}

func (repo *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	tx, err := repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer repo.Rollback(ctx, tx)

	feedingRaw, err := marshalJSONB(reservation.Feeding)
	if err != nil {
		return fmt.Errorf("failed to encode feeding snapshot: %w", err)
	}

	query := `
		UPDATE reservations
		SET start_date = $1, end_date = $2, feeding = $3, belongings = $4, daily_rate = $5, subtotal = $6, tax = $7, total = $8, with_tax = $9,
		    remaining_balance = $10, status = $11, liability_accepted = $12, delivered_at = $13, last_updated_at = $14, last_updated_by = $15
		WHERE reservation_id = $16;
	`
	tag, err := tx.Exec(ctx, query,
		reservation.StartDate,
		reservation.EndDate,
		feedingRaw,
		reservation.Belongings,
		reservation.DailyRate,
		reservation.Subtotal,
		reservation.Tax,
		reservation.Total,
		reservation.WithTax,
		reservation.RemainingBalance,
		string(reservation.Status),
		reservation.LiabilityAccepted,
		reservation.DeliveredAt,
		reservation.LastUpdatedAt,
		reservation.LastUpdatedBy,
		reservation.ReservationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", reservation.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Extras are replaced wholesale; the snapshot carries its own IDs.
	if _, err := tx.Exec(ctx, `DELETE FROM reservation_extras WHERE reservation_id = $1;`, reservation.ReservationID); err != nil {
		return fmt.Errorf("failed to clear reservation extras: %w", err)
	}
	if err := insertReservationExtras(ctx, tx, reservation.Extras); err != nil {
		return err
	}

	return repo.Commit(ctx, tx)
}

// CloseReservation writes the closed state and the final-payment ledger row
// in one transaction.
func (repo *PgxReservationRepository) CloseReservation(ctx context.Context, reservation domain.Reservation, payment *domain.FinancialTransaction) error {
	tx, err := repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer repo.Rollback(ctx, tx)

	query := `
		UPDATE reservations
		SET remaining_balance = $1, status = $2, liability_accepted = $3, delivered_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE reservation_id = $7 AND status IN ('CONFIRMED', 'PENDING_CLOSE');
	`
	tag, err := tx.Exec(ctx, query,
		reservation.RemainingBalance,
		string(reservation.Status),
		reservation.LiabilityAccepted,
		reservation.DeliveredAt,
		reservation.LastUpdatedAt,
		reservation.LastUpdatedBy,
		reservation.ReservationID,
	)
	if err != nil {
		return fmt.Errorf("failed to close reservation %s: %w", reservation.ReservationID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or a concurrent close already won.
		return fmt.Errorf("%w: reservation %s is not open", apperrors.ErrConflict, reservation.ReservationID)
	}

	if payment != nil {
		if err := insertTransaction(ctx, tx, *payment); err != nil {
			return err
		}
	}

	return repo.Commit(ctx, tx)
}
