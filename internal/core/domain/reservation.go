package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus indicates where a reservation sits in its lifecycle.
// COMPLETED and CANCELLED are terminal.
type ReservationStatus string

const (
	StatusConfirmed    ReservationStatus = "CONFIRMED"
	StatusPendingClose ReservationStatus = "PENDING_CLOSE"
	StatusCompleted    ReservationStatus = "COMPLETED"
	StatusCancelled    ReservationStatus = "CANCELLED"
)

// Terminal reports whether the status is absorbing.
func (s ReservationStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Reservation covers exactly one pet over a date range. Multi-pet bookings
// are modeled as sibling reservations sharing a BookingGroupID, with the
// deposit split proportionally across them.
type Reservation struct {
	ReservationID  string `json:"reservationID"` // Primary Key (UUID)
	BookingGroupID string `json:"bookingGroupID"`
	ClientID       string `json:"clientID"`
	PetID          string `json:"petID"`
	ServiceID      string `json:"serviceID"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// Snapshot of the pet's feeding protocol at booking time.
	Feeding    *FeedingProtocol `json:"feeding,omitempty"`
	Belongings []string         `json:"belongings,omitempty"`

	DailyRate decimal.Decimal `json:"dailyRate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	WithTax   bool            `json:"withTax"`

	DepositAmount    *decimal.Decimal `json:"depositAmount,omitempty"`
	DepositMethod    *PaymentMethod   `json:"depositMethod,omitempty"`
	RemainingBalance decimal.Decimal  `json:"remainingBalance"`

	Status            ReservationStatus `json:"status"`
	LiabilityAccepted bool              `json:"liabilityAccepted"`
	DeliveredAt       *time.Time        `json:"deliveredAt,omitempty"`

	Extras []ReservationExtra `json:"extras,omitempty"`
	AuditFields
}

// ReservationExtra links an extra service to a reservation with the price
// and per-day flag snapshotted at booking time.
type ReservationExtra struct {
	ReservationExtraID string          `json:"reservationExtraID"` // Primary Key (UUID)
	ReservationID      string          `json:"reservationID"`
	ExtraServiceID     string          `json:"extraServiceID"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	PerDay             bool            `json:"perDay"`
	Quantity           int             `json:"quantity"`
}
