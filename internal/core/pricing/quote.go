package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the VAT applied when the client requests an invoice (factura).
var TaxRate = decimal.RequireFromString("0.16")

// ExtraLine is a selected add-on as it enters the quote: price and per-day
// flag snapshotted from the catalog, quantity chosen on the form.
type ExtraLine struct {
	Name     string
	Price    decimal.Decimal
	PerDay   bool
	Quantity int
}

// StayInput is everything the aggregator needs to price one pet's stay.
type StayInput struct {
	Start     time.Time
	End       time.Time
	DailyRate decimal.Decimal
	Extras    []ExtraLine
	WithTax   bool
}

// Quote is a priced stay. A zero Quote (Days == 0) is the safe default for
// inverted or missing date ranges; callers rely on it to disable submission
// rather than erroring.
type Quote struct {
	Days     int             `json:"days"`
	Base     decimal.Decimal `json:"base"`
	Extras   decimal.Decimal `json:"extras"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// StayDays counts calendar days in [start, end], both endpoints inclusive:
// start == end is 1 day, end before start is 0.
func StayDays(start, end time.Time) int {
	s := atMidnightUTC(start)
	e := atMidnightUTC(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// QuoteStay prices a single pet's stay: daily rate times stay days, plus
// extras (per-day extras multiply by days, flat extras charge once), with
// 16% tax on top when opted in. All money is rounded to 2 decimals.
func QuoteStay(in StayInput) Quote {
	days := StayDays(in.Start, in.End)
	if days == 0 {
		return zeroQuote()
	}

	daysDec := decimal.NewFromInt(int64(days))
	base := in.DailyRate.Mul(daysDec)

	extras := decimal.Zero
	for _, ex := range in.Extras {
		qty := ex.Quantity
		if qty <= 0 {
			qty = 1
		}
		line := ex.Price.Mul(decimal.NewFromInt(int64(qty)))
		if ex.PerDay {
			line = line.Mul(daysDec)
		}
		extras = extras.Add(line)
	}

	subtotal := base.Add(extras).Round(2)
	tax := decimal.Zero
	if in.WithTax {
		tax = subtotal.Mul(TaxRate).Round(2)
	}

	return Quote{
		Days:     days,
		Base:     base.Round(2),
		Extras:   extras.Round(2),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// QuoteBooking prices a multi-pet booking: each pet is quoted independently
// with its own weight-resolved rate, then subtotal/tax/total are summed.
// All stays in one booking share the same date range.
func QuoteBooking(stays []StayInput) Quote {
	combined := zeroQuote()
	for _, in := range stays {
		q := QuoteStay(in)
		if q.Days > combined.Days {
			combined.Days = q.Days
		}
		combined.Base = combined.Base.Add(q.Base)
		combined.Extras = combined.Extras.Add(q.Extras)
		combined.Subtotal = combined.Subtotal.Add(q.Subtotal)
		combined.Tax = combined.Tax.Add(q.Tax)
		combined.Total = combined.Total.Add(q.Total)
	}
	return combined
}

func zeroQuote() Quote {
	return Quote{
		Base:     decimal.Zero,
		Extras:   decimal.Zero,
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}
