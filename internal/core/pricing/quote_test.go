package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayDays(t *testing.T) {
	assert.Equal(t, 1, StayDays(date(2024, 1, 1), date(2024, 1, 1)), "same-day stay counts one day")
	assert.Equal(t, 3, StayDays(date(2024, 1, 1), date(2024, 1, 3)))
	assert.Equal(t, 0, StayDays(date(2024, 1, 3), date(2024, 1, 1)), "inverted range counts zero days")

	// Time-of-day noise must not change the day count.
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 3, StayDays(start, end))
}

func TestQuoteStay_BoardingScenario(t *testing.T) {
	// Boarding, 7 kg pet -> 270/day (5-10 band). 2024-01-01..2024-01-03 is
	// 3 days -> subtotal 810, no tax unless factura requested.
	in := StayInput{
		Start:     date(2024, 1, 1),
		End:       date(2024, 1, 3),
		DailyRate: decimal.NewFromInt(270),
	}

	q := QuoteStay(in)
	assert.Equal(t, 3, q.Days)
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(810)), "subtotal %s", q.Subtotal)
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.Total.Equal(decimal.NewFromInt(810)))

	in.WithTax = true
	q = QuoteStay(in)
	assert.True(t, q.Tax.Equal(decimal.RequireFromString("129.60")), "tax %s", q.Tax)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("939.60")), "total %s", q.Total)
}

func TestQuoteStay_InvertedRangeIsAllZero(t *testing.T) {
	q := QuoteStay(StayInput{
		Start:     date(2024, 1, 5),
		End:       date(2024, 1, 1),
		DailyRate: decimal.NewFromInt(270),
		Extras:    []ExtraLine{{Price: decimal.NewFromInt(50), PerDay: true}},
		WithTax:   true,
	})
	assert.Equal(t, 0, q.Days)
	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Tax.IsZero())
	assert.True(t, q.Total.IsZero())
}

func TestQuoteStay_Extras(t *testing.T) {
	in := StayInput{
		Start:     date(2024, 1, 1),
		End:       date(2024, 1, 3), // 3 days
		DailyRate: decimal.NewFromInt(100),
		Extras: []ExtraLine{
			{Name: "Paseo extra", Price: decimal.NewFromInt(40), PerDay: true},             // 40*3
			{Name: "Baño", Price: decimal.NewFromInt(120), PerDay: false},                  // 120
			{Name: "Medicación", Price: decimal.NewFromInt(15), PerDay: true, Quantity: 2}, // 15*2*3
		},
	}
	q := QuoteStay(in)
	require.True(t, q.Extras.Equal(decimal.NewFromInt(330)), "extras %s", q.Extras)
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(630)))
}

func TestQuoteBooking_SumsAcrossPets(t *testing.T) {
	stays := []StayInput{
		{Start: date(2024, 1, 1), End: date(2024, 1, 3), DailyRate: decimal.NewFromInt(270), WithTax: true},
		{Start: date(2024, 1, 1), End: date(2024, 1, 3), DailyRate: decimal.NewFromInt(220)},
	}
	q := QuoteBooking(stays)
	assert.Equal(t, 3, q.Days, "days are shared across the booking")
	// 810 + 129.60 + 660
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(1470)), "subtotal %s", q.Subtotal)
	assert.True(t, q.Tax.Equal(decimal.RequireFromString("129.60")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("1599.60")), "total %s", q.Total)
}

func TestQuoteBooking_Empty(t *testing.T) {
	q := QuoteBooking(nil)
	assert.Equal(t, 0, q.Days)
	assert.True(t, q.Total.IsZero())
}
