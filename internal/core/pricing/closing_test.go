package pricing

import (
	"testing"

	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func method(m domain.PaymentMethod) *domain.PaymentMethod { return &m }

func TestClose_BalanceRequiresPaymentMethod(t *testing.T) {
	balance := decimal.RequireFromString("743.80")

	next, err := Close(domain.StatusConfirmed, true, balance, nil)
	require.ErrorIs(t, err, ErrPaymentMethodRequired)
	assert.Equal(t, domain.StatusConfirmed, next, "no state change on rejection")

	next, err = Close(domain.StatusConfirmed, true, balance, method("BITCOIN"))
	require.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Equal(t, domain.StatusConfirmed, next)

	next, err = Close(domain.StatusConfirmed, true, balance, method(domain.PaymentCash))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, next)
}

func TestClose_ZeroBalanceNeverRequiresMethod(t *testing.T) {
	next, err := Close(domain.StatusPendingClose, true, decimal.Zero, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, next)
}

func TestClose_RequiresLiabilityAcceptance(t *testing.T) {
	next, err := Close(domain.StatusConfirmed, false, decimal.Zero, nil)
	require.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Equal(t, domain.StatusConfirmed, next)
}

func TestClose_FromPendingClose(t *testing.T) {
	next, err := Close(domain.StatusPendingClose, true, decimal.NewFromInt(50), method(domain.PaymentTransfer))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, next)
}

func TestClose_TerminalStatesAbsorb(t *testing.T) {
	for _, s := range []domain.ReservationStatus{domain.StatusCompleted, domain.StatusCancelled} {
		next, err := Close(s, true, decimal.Zero, nil)
		require.ErrorIs(t, err, ErrTerminalStatus)
		assert.Equal(t, s, next)
	}
}

func TestDeliver(t *testing.T) {
	next, err := Deliver(domain.StatusConfirmed, true)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingClose, next)

	_, err = Deliver(domain.StatusConfirmed, false)
	require.ErrorIs(t, err, ErrTermsNotAccepted)

	// Already delivered: only Close can move it forward.
	_, err = Deliver(domain.StatusPendingClose, true)
	require.Error(t, err)

	_, err = Deliver(domain.StatusCancelled, true)
	require.ErrorIs(t, err, ErrTerminalStatus)
}
