package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDeposit_TwoPetScenario(t *testing.T) {
	// Pet A total 939.60, pet B total 500.00, deposit 300: proportional
	// shares rounded to cents, summing exactly to 300.00.
	totals := []decimal.Decimal{
		decimal.RequireFromString("939.60"),
		decimal.RequireFromString("500.00"),
	}
	shares := SplitDeposit(decimal.NewFromInt(300), totals)
	require.Len(t, shares, 2)

	assert.True(t, shares[0].Equal(decimal.RequireFromString("195.80")), "share A %s", shares[0])
	assert.True(t, shares[1].Equal(decimal.RequireFromString("104.20")), "share B %s", shares[1])

	sum := shares[0].Add(shares[1])
	assert.True(t, sum.Equal(decimal.NewFromInt(300)), "shares must sum to the deposit exactly")
}

func TestSplitDeposit_SumIsPennyExact(t *testing.T) {
	deposits := []string{"0", "0.01", "100", "333.33", "1000"}
	totalSets := [][]string{
		{"939.60", "500.00"},
		{"0.01", "0.01", "0.01"},
		{"123.45", "678.90", "11.11", "0.04"},
		{"100", "100", "100"},
	}
	for _, d := range deposits {
		deposit := decimal.RequireFromString(d)
		for _, set := range totalSets {
			totals := make([]decimal.Decimal, len(set))
			for i, s := range set {
				totals[i] = decimal.RequireFromString(s)
			}
			shares := SplitDeposit(deposit, totals)
			require.Len(t, shares, len(totals))

			sum := decimal.Zero
			for _, s := range shares {
				sum = sum.Add(s)
				assert.False(t, s.IsNegative(), "deposit %s totals %v: share %s is negative", d, set, s)
			}
			assert.True(t, sum.Equal(deposit), "deposit %s totals %v: shares sum to %s", d, set, sum)
		}
	}
}

func TestSplitDeposit_ZeroCombinedTotal(t *testing.T) {
	totals := []decimal.Decimal{decimal.Zero, decimal.Zero}
	shares := SplitDeposit(decimal.NewFromInt(250), totals)
	for _, s := range shares {
		assert.True(t, s.IsZero(), "zero combined total must yield all-zero shares")
	}
}

func TestSplitDeposit_NoPets(t *testing.T) {
	shares := SplitDeposit(decimal.NewFromInt(100), nil)
	assert.Empty(t, shares)
}

func TestRemainingBalance(t *testing.T) {
	total := decimal.RequireFromString("939.60")
	share := decimal.RequireFromString("195.80")
	assert.True(t, RemainingBalance(total, share).Equal(decimal.RequireFromString("743.80")))

	// Overpaid deposits clamp at zero.
	assert.True(t, RemainingBalance(decimal.NewFromInt(100), decimal.NewFromInt(150)).IsZero())
}
