package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDailyRate_OverrideBands(t *testing.T) {
	override := DefaultRateTable()
	base := decimal.NewFromInt(999)

	tests := []struct {
		name   string
		weight string
		kind   ServiceKind
		want   int64
	}{
		{"seven kg boarding hits 5-10 band", "7", Boarding, 270},
		{"seven kg daycare hits 5-10 band", "7", Daycare, 210},
		{"lowest band includes its minimum", "0", Boarding, 220},
		{"band maximum is inclusive", "5", Boarding, 220},
		{"band minimum is exclusive above the lowest", "5.01", Boarding, 270},
		{"ten kg stays in 5-10 band", "10", Boarding, 270},
		{"heavy dog hits top band", "40", Boarding, 380},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := decimal.RequireFromString(tt.weight)
			got := ResolveDailyRate(w, tt.kind, base, override, nil)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s want %d", got, tt.want)
		})
	}
}

func TestResolveDailyRate_NoLowerBandAlsoMatches(t *testing.T) {
	// For any weight the selected band must be the unique one satisfying
	// min < w <= max (min <= w for the lowest band).
	bands := DefaultRateTable()
	for _, w := range []string{"0", "2.5", "5", "5.5", "10", "15", "20", "33", "40"} {
		weight := decimal.RequireFromString(w)
		matched := 0
		for i, b := range bands {
			above := weight.GreaterThan(b.MinWeight)
			if i == 0 {
				above = weight.GreaterThanOrEqual(b.MinWeight)
			}
			if above && weight.LessThanOrEqual(b.MaxWeight) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "weight %s must match exactly one band", w)
	}
}

func TestResolveDailyRate_Fallbacks(t *testing.T) {
	base := decimal.NewFromInt(150)
	dynamic := []RateBand{
		{MinWeight: dec(40), MaxWeight: dec(60), BoardingRate: dec(450), DaycareRate: dec(350)},
	}

	// Unmatched by override, matched by dynamic.
	got := ResolveDailyRate(dec(50), Boarding, base, DefaultRateTable(), dynamic)
	assert.True(t, got.Equal(dec(450)))

	// Unmatched everywhere falls back to base price.
	got = ResolveDailyRate(dec(80), Boarding, base, DefaultRateTable(), dynamic)
	assert.True(t, got.Equal(base))

	// Empty tables fall through to base price without error.
	got = ResolveDailyRate(dec(7), Daycare, base, nil, nil)
	assert.True(t, got.Equal(base))
}

func TestResolveDailyRate_UnsortedDynamicTable(t *testing.T) {
	base := decimal.NewFromInt(100)
	dynamic := []RateBand{
		{MinWeight: dec(10), MaxWeight: dec(20), BoardingRate: dec(300), DaycareRate: dec(240)},
		{MinWeight: dec(0), MaxWeight: dec(10), BoardingRate: dec(200), DaycareRate: dec(160)},
	}
	got := ResolveDailyRate(dec(4), Boarding, base, nil, dynamic)
	assert.True(t, got.Equal(dec(200)), "resolver must sort bands ascending before matching")
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"7", "7"},
		{"7.5", "7.5"},
		{"7,5", "7.5"},
		{" 12,25 kg ", "12.25"},
		{"abc", "0"},
		{"", "0"},
		{"-3", "0"},
	}
	for _, tt := range tests {
		got := ParseWeight(tt.raw)
		require.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseWeight(%q) = %s, want %s", tt.raw, got, tt.want)
	}
}

func TestResolveKind(t *testing.T) {
	assert.Equal(t, Boarding, ResolveKind("Pensión"))
	assert.Equal(t, Boarding, ResolveKind("Boarding"))
	assert.Equal(t, Daycare, ResolveKind("Guardería"))
	assert.Equal(t, Daycare, ResolveKind("guarderia medio día"))
	assert.Equal(t, Daycare, ResolveKind("Doggy Daycare"))
	assert.Equal(t, Boarding, ResolveKind("something else"))
}
