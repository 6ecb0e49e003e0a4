package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// execQuerier is satisfied by both *pgxpool.Pool and pgx.Tx so ledger
// inserts can run standalone or inside a booking/closing transaction.
type execQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, kind, category, amount, date, payment_method, reservation_id, description, created_at, created_by, last_updated_at, last_updated_by`

func insertTransaction(ctx context.Context, db execQuerier, txn domain.FinancialTransaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var method *string
	if txn.PaymentMethod != nil {
		m := string(*txn.PaymentMethod)
		method = &m
	}
	_, err := db.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Kind),
		txn.Category,
		txn.Amount,
		txn.Date,
		method,
		txn.ReservationID,
		txn.Description,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.FinancialTransaction, error) {
	var txn domain.FinancialTransaction
	var kind string
	var method *string
	err := row.Scan(
		&txn.TransactionID,
		&kind,
		&txn.Category,
		&txn.Amount,
		&txn.Date,
		&method,
		&txn.ReservationID,
		&txn.Description,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	txn.Kind = domain.TransactionKind(kind)
	if method != nil {
		m := domain.PaymentMethod(*method)
		txn.PaymentMethod = &m
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	return insertTransaction(ctx, r.pool, txn)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.FinancialTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ($1 = '' OR kind = $1)
		  AND ($2 = '' OR category = $2)
		  AND ($3::timestamptz IS NULL OR date >= $3)
		  AND ($4::timestamptz IS NULL OR date <= $4)
		ORDER BY date DESC
		LIMIT $5 OFFSET $6;
	`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, query,
		string(filter.Kind),
		filter.Category,
		filter.From,
		filter.To,
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.FinancialTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	query := `
		UPDATE transactions
		SET category = $1, amount = $2, date = $3, payment_method = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $8;
	`
	var method *string
	if txn.PaymentMethod != nil {
		m := string(*txn.PaymentMethod)
		method = &m
	}
	tag, err := r.pool.Exec(ctx, query,
		txn.Category,
		txn.Amount,
		txn.Date,
		method,
		txn.Description,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) SummarizeByKind(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'EXPENSE'), 0)
		FROM transactions
		WHERE date >= $1 AND date <= $2;
	`
	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return income, expense, nil
}
