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
	"github.com/shopspring/decimal"
)

// FinanceService manages the manual side of the Income/Expense ledger.
// Reservation workflows write their own rows through the reservation
// repository; those rows cannot be deleted here while the reservation link
// is still in place.
type FinanceService struct {
	TransactionRepository portsrepo.TransactionRepository
}

func NewFinanceService(repo portsrepo.TransactionRepository) *FinanceService {
	return &FinanceService{TransactionRepository: repo}
}

func (s *FinanceService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.FinancialTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.FinancialTransaction{
		TransactionID: uuid.NewString(),
		Kind:          req.Kind,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.TransactionRepository.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *FinanceService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.FinancialTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.FinancialTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.TransactionRepository.ListTransactions(ctx, filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.FinancialTransaction{}, nil
	}
	return txns, nil
}

func (s *FinanceService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.FinancialTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = req.PaymentMethod
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.TransactionRepository.UpdateTransaction(ctx, *txn); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a manual ledger entry. Rows written by the
// reservation workflows keep their reservation link and are protected.
func (s *FinanceService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.TransactionRepository.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.ReservationID != nil {
		return fmt.Errorf("%w: transaction belongs to reservation %s", apperrors.ErrConflict, *txn.ReservationID)
	}

	if err := s.TransactionRepository.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// Summarize totals income and expenses over a period and returns the net.
func (s *FinanceService) Summarize(ctx context.Context, from, to time.Time) (income, expense, net decimal.Decimal, err error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	income, expense, err = s.TransactionRepository.SummarizeByKind(ctx, from, to)
	if err != nil {
		logger.Error("Failed to summarize transactions", slog.String("error", err.Error()))
		return decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	return income, expense, income.Sub(expense), nil
}
