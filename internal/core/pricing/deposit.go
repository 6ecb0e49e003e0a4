package pricing

import "github.com/shopspring/decimal"

// SplitDeposit apportions a deposit across pets proportionally to each
// pet's share of the combined total. Shares are rounded to 2 decimals;
// the rounding residual is added to the last share so the returned shares
// always sum to the deposit exactly. A zero combined total yields all-zero
// shares regardless of the deposit.
func SplitDeposit(deposit decimal.Decimal, perPetTotals []decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(perPetTotals))
	for i := range shares {
		shares[i] = decimal.Zero
	}
	if len(perPetTotals) == 0 || deposit.LessThanOrEqual(decimal.Zero) {
		return shares
	}

	combined := decimal.Zero
	for _, t := range perPetTotals {
		combined = combined.Add(t)
	}
	if combined.IsZero() {
		return shares
	}

	allocated := decimal.Zero
	for i, t := range perPetTotals {
		shares[i] = deposit.Mul(t).Div(combined).Round(2)
		allocated = allocated.Add(shares[i])
	}

	// Independent rounding can miss the deposit by a cent or two; the last
	// pet absorbs the residual.
	residual := deposit.Sub(allocated)
	if !residual.IsZero() {
		shares[len(shares)-1] = shares[len(shares)-1].Add(residual)
	}
	return shares
}

// RemainingBalance derives the balance a reservation stores after its
// deposit share is applied, clamped at zero.
func RemainingBalance(total, depositShare decimal.Decimal) decimal.Decimal {
	balance := total.Sub(depositShare)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
