package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseWeight parses a weight entered in a form field. It tolerates a
// trailing unit and a localized decimal comma ("7,5 kg" -> 7.5). Anything
// that still fails to parse yields zero, which falls through the rate
// tables to the service base price.
func ParseWeight(raw string) decimal.Decimal {
	s := strings.TrimSpace(strings.ToLower(raw))
	s = strings.TrimSuffix(s, "kg")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	w, err := decimal.NewFromString(s)
	if err != nil || w.IsNegative() {
		return decimal.Zero
	}
	return w
}
