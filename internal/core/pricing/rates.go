package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RateBand is one row of a weight-tiered rate table. A weight w matches
// when MinWeight < w <= MaxWeight; the lowest band also admits w == MinWeight.
type RateBand struct {
	MinWeight    decimal.Decimal
	MaxWeight    decimal.Decimal
	BoardingRate decimal.Decimal
	DaycareRate  decimal.Decimal
}

// Rate returns the band's rate for the given service kind.
func (b RateBand) Rate(kind ServiceKind) decimal.Decimal {
	if kind == Daycare {
		return b.DaycareRate
	}
	return b.BoardingRate
}

// DefaultRateTable is the hard-coded override table searched before the
// externally managed one.
func DefaultRateTable() []RateBand {
	return []RateBand{
		{MinWeight: dec(0), MaxWeight: dec(5), BoardingRate: dec(220), DaycareRate: dec(180)},
		{MinWeight: dec(5), MaxWeight: dec(10), BoardingRate: dec(270), DaycareRate: dec(210)},
		{MinWeight: dec(10), MaxWeight: dec(20), BoardingRate: dec(320), DaycareRate: dec(250)},
		{MinWeight: dec(20), MaxWeight: dec(40), BoardingRate: dec(380), DaycareRate: dec(290)},
	}
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// matchBand scans bands in ascending MinWeight order and returns the first
// band the weight falls into.
func matchBand(bands []RateBand, weight decimal.Decimal) (RateBand, bool) {
	sorted := make([]RateBand, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinWeight.LessThan(sorted[j].MinWeight)
	})

	for i, b := range sorted {
		aboveMin := weight.GreaterThan(b.MinWeight)
		if i == 0 {
			aboveMin = weight.GreaterThanOrEqual(b.MinWeight)
		}
		if aboveMin && weight.LessThanOrEqual(b.MaxWeight) {
			return b, true
		}
	}
	return RateBand{}, false
}

// ResolveDailyRate maps a pet weight and service kind to the daily rate.
// Override bands are searched first, then the dynamic table; if neither
// matches (or both are empty) the service base price is used unchanged.
func ResolveDailyRate(weight decimal.Decimal, kind ServiceKind, basePrice decimal.Decimal, override, dynamic []RateBand) decimal.Decimal {
	if band, ok := matchBand(override, weight); ok {
		return band.Rate(kind)
	}
	if band, ok := matchBand(dynamic, weight); ok {
		return band.Rate(kind)
	}
	return basePrice
}
