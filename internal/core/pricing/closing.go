package pricing

import (
	"errors"
	"fmt"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrTermsNotAccepted blocks any delivery until the operator accepts the
	// delivery-liability terms.
	ErrTermsNotAccepted = errors.New("delivery terms must be accepted")
	// ErrPaymentMethodRequired blocks closing with an outstanding balance and
	// no payment method.
	ErrPaymentMethodRequired = errors.New("payment method is required to settle the remaining balance")
	// ErrInvalidPaymentMethod rejects payment methods outside CASH/TRANSFER/CARD.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrTerminalStatus rejects transitions out of COMPLETED or CANCELLED.
	ErrTerminalStatus = errors.New("reservation is already closed")
)

// Deliver validates the Confirmed -> PendingClose transition: the pet is
// handed back while the balance stays open. No money moves at this step.
func Deliver(status domain.ReservationStatus, liabilityAccepted bool) (domain.ReservationStatus, error) {
	if status.Terminal() {
		return status, fmt.Errorf("%w: status is %s", ErrTerminalStatus, status)
	}
	if status != domain.StatusConfirmed {
		return status, fmt.Errorf("cannot deliver pending from status %s", status)
	}
	if !liabilityAccepted {
		return status, ErrTermsNotAccepted
	}
	return domain.StatusPendingClose, nil
}

// Close validates the Confirmed|PendingClose -> Completed transition. A
// payment method is mandatory exactly when a balance remains; a zero
// balance never requires one. On validation failure the current status is
// returned unchanged so no partial state change can occur.
func Close(status domain.ReservationStatus, liabilityAccepted bool, balance decimal.Decimal, method *domain.PaymentMethod) (domain.ReservationStatus, error) {
	if status.Terminal() {
		return status, fmt.Errorf("%w: status is %s", ErrTerminalStatus, status)
	}
	if !liabilityAccepted {
		return status, ErrTermsNotAccepted
	}
	if balance.GreaterThan(decimal.Zero) {
		if method == nil {
			return status, ErrPaymentMethodRequired
		}
		if !domain.ValidPaymentMethod(*method) {
			return status, fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, *method)
		}
	}
	return domain.StatusCompleted, nil
}
