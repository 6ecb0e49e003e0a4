package dto

import (
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a manual income or expense entry.
type CreateTransactionRequest struct {
	Kind          domain.TransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Category      string                 `json:"category" binding:"required"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	Date          time.Time              `json:"date" binding:"required"`
	PaymentMethod *domain.PaymentMethod  `json:"paymentMethod" binding:"omitempty,oneof=CASH TRANSFER CARD"`
	Description   string                 `json:"description"`
}

// UpdateTransactionRequest edits a ledger entry. All fields are optional.
type UpdateTransactionRequest struct {
	Category      *string               `json:"category"`
	Amount        *decimal.Decimal      `json:"amount"`
	Date          *time.Time            `json:"date"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH TRANSFER CARD"`
	Description   *string               `json:"description"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Kind          domain.TransactionKind `json:"kind"`
	Category      string                 `json:"category"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	PaymentMethod *domain.PaymentMethod  `json:"paymentMethod,omitempty"`
	ReservationID *string                `json:"reservationID,omitempty"`
	Description   string                 `json:"description,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.FinancialTransaction to its DTO.
func ToTransactionResponse(t *domain.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Kind:          t.Kind,
		Category:      t.Category,
		Amount:        t.Amount,
		Date:          t.Date,
		PaymentMethod: t.PaymentMethod,
		ReservationID: t.ReservationID,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsParams defines query parameters for listing ledger entries.
type ListTransactionsParams struct {
	Kind     string `form:"kind"`
	Category string `form:"category"`
	From     string `form:"from"` // YYYY-MM-DD
	To       string `form:"to"`   // YYYY-MM-DD
	Limit    int    `form:"limit,default=50"`
	Offset   int    `form:"offset,default=0"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryParams defines the period for a financial summary.
type SummaryParams struct {
	From string `form:"from"` // YYYY-MM-DD
	To   string `form:"to"`   // YYYY-MM-DD
}

// SummaryResponse aggregates income and expenses over a period.
type SummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
