package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger entry is money in or money out.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// Ledger categories written by the reservation workflows. Revenue is
// recognized on a cash basis: a deposit row at booking time and a final
// payment row at close time. Edits never write ledger rows.
const (
	CategoryDeposit      = "Anticipo"
	CategoryFinalPayment = "Pago final"
)

// FinancialTransaction is a single Income/Expense ledger entry, optionally
// linked to the reservation that produced it.
type FinancialTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Kind          TransactionKind `json:"kind"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"` // Positive value
	Date          time.Time       `json:"date"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	ReservationID *string         `json:"reservationID,omitempty"`
	Description   string          `json:"description"`
	AuditFields
}
