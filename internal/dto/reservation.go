package dto

import (
	"time"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/petcarehq/petcare-backend/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// BookingExtraRequest selects an add-on for one pet's reservation.
type BookingExtraRequest struct {
	ExtraServiceID string `json:"extraServiceID" binding:"required"`
	Quantity       int    `json:"quantity"`
}

// BookingPetRequest is one pet's slice of a booking wizard submission.
type BookingPetRequest struct {
	PetID      string                `json:"petID" binding:"required"`
	Extras     []BookingExtraRequest `json:"extras"`
	Belongings []string              `json:"belongings"`
}

// CreateBookingRequest is the multi-pet wizard submission. One reservation
// is created per pet; the deposit is split proportionally across them.
type CreateBookingRequest struct {
	ClientID  string    `json:"clientID" binding:"required"`
	ServiceID string    `json:"serviceID" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`

	Pets    []BookingPetRequest `json:"pets" binding:"required,min=1,dive"`
	WithTax bool                `json:"withTax"`

	DepositAmount *decimal.Decimal      `json:"depositAmount"`
	DepositMethod *domain.PaymentMethod `json:"depositMethod" binding:"omitempty,oneof=CASH TRANSFER CARD"`
}

// UpdateReservationRequest edits a single reservation. Cost fields are
// recomputed and the balance re-derived on every update.
type UpdateReservationRequest struct {
	StartDate  *time.Time              `json:"startDate"`
	EndDate    *time.Time              `json:"endDate"`
	Extras     *[]BookingExtraRequest  `json:"extras"`
	WithTax    *bool                   `json:"withTax"`
	Belongings *[]string               `json:"belongings"`
	Feeding    *FeedingProtocolPayload `json:"feeding"`
}

// CloseReservationRequest settles and completes a reservation. A payment
// method is mandatory when a balance remains.
type CloseReservationRequest struct {
	AcceptTerms   bool                  `json:"acceptTerms"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH TRANSFER CARD"`
}

// DeliverReservationRequest hands the pet back while the balance stays open.
type DeliverReservationRequest struct {
	AcceptTerms bool `json:"acceptTerms"`
}

// ReservationExtraResponse is a snapshotted add-on line.
type ReservationExtraResponse struct {
	ExtraServiceID string          `json:"extraServiceID"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	PerDay         bool            `json:"perDay"`
	Quantity       int             `json:"quantity"`
}

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID  string `json:"reservationID"`
	BookingGroupID string `json:"bookingGroupID"`
	ClientID       string `json:"clientID"`
	PetID          string `json:"petID"`
	ServiceID      string `json:"serviceID"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Feeding    *FeedingProtocolPayload    `json:"feeding,omitempty"`
	Belongings []string                   `json:"belongings,omitempty"`
	Extras     []ReservationExtraResponse `json:"extras,omitempty"`

	DailyRate decimal.Decimal `json:"dailyRate"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	WithTax   bool            `json:"withTax"`

	DepositAmount    *decimal.Decimal      `json:"depositAmount,omitempty"`
	DepositMethod    *domain.PaymentMethod `json:"depositMethod,omitempty"`
	RemainingBalance decimal.Decimal       `json:"remainingBalance"`

	Status            domain.ReservationStatus `json:"status"`
	LiabilityAccepted bool                     `json:"liabilityAccepted"`
	DeliveredAt       *time.Time               `json:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingResponse wraps the sibling reservations created by one wizard
// submission together with the combined quote.
type BookingResponse struct {
	BookingGroupID string                `json:"bookingGroupID"`
	Reservations   []ReservationResponse `json:"reservations"`
	Quote          pricing.Quote         `json:"quote"`
}

// ToReservationResponse converts a domain.Reservation to its DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	extras := make([]ReservationExtraResponse, len(r.Extras))
	for i, ex := range r.Extras {
		extras[i] = ReservationExtraResponse{
			ExtraServiceID: ex.ExtraServiceID,
			Name:           ex.Name,
			Price:          ex.Price,
			PerDay:         ex.PerDay,
			Quantity:       ex.Quantity,
		}
	}
	return ReservationResponse{
		ReservationID:     r.ReservationID,
		BookingGroupID:    r.BookingGroupID,
		ClientID:          r.ClientID,
		PetID:             r.PetID,
		ServiceID:         r.ServiceID,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Feeding:           fromFeedingProtocol(r.Feeding),
		Belongings:        r.Belongings,
		Extras:            extras,
		DailyRate:         r.DailyRate,
		Subtotal:          r.Subtotal,
		Tax:               r.Tax,
		Total:             r.Total,
		WithTax:           r.WithTax,
		DepositAmount:     r.DepositAmount,
		DepositMethod:     r.DepositMethod,
		RemainingBalance:  r.RemainingBalance,
		Status:            r.Status,
		LiabilityAccepted: r.LiabilityAccepted,
		DeliveredAt:       r.DeliveredAt,
		CreatedAt:         r.CreatedAt,
	}
}

// ToReservationResponses converts a slice of reservations.
func ToReservationResponses(rs []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i := range rs {
		out[i] = ToReservationResponse(&rs[i])
	}
	return out
}

// QuotePetResponse is one pet's line in a dry-run quote.
type QuotePetResponse struct {
	PetID            string          `json:"petID"`
	DailyRate        decimal.Decimal `json:"dailyRate"`
	Quote            pricing.Quote   `json:"quote"`
	DepositShare     decimal.Decimal `json:"depositShare"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// QuoteBookingResponse is the dry-run pricing for a wizard submission.
// Nothing is persisted when it is produced.
type QuoteBookingResponse struct {
	Pets     []QuotePetResponse `json:"pets"`
	Combined pricing.Quote      `json:"combined"`
}

// ListReservationsParams defines query parameters for listing reservations.
type ListReservationsParams struct {
	ClientID string `form:"clientID"`
	PetID    string `form:"petID"`
	Status   string `form:"status"`
	From     string `form:"from"` // YYYY-MM-DD
	To       string `form:"to"`   // YYYY-MM-DD
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// ListReservationsResponse wraps a page of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}
