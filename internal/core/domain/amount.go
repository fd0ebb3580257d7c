package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// StroopsPerLumen is the number of stroops in one unit of a classic asset.
const StroopsPerLumen = 10_000_000

// ParseAmount parses a decimal amount string. Floating point never enters the
// pipeline; a malformed or non-finite string is rejected here.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// FitsPrecision reports whether d has no more than decimals fractional digits.
func FitsPrecision(d decimal.Decimal, decimals int) bool {
	return d.Equal(d.Truncate(int32(decimals)))
}

var maxStroops = decimal.NewFromInt(math.MaxInt64)

// ToStroops converts a classic amount to its integer stroop value. Values
// outside the int64 range are an error rather than a wrapped result.
func ToStroops(d decimal.Decimal) (int64, error) {
	shifted := d.Shift(ClassicDecimals).Truncate(0)
	if shifted.GreaterThan(maxStroops) || shifted.LessThan(maxStroops.Neg()) {
		return 0, fmt.Errorf("amount %s overflows int64 stroops", d.String())
	}
	return shifted.IntPart(), nil
}

// FromStroops converts an integer stroop value to a classic amount.
func FromStroops(stroops int64) decimal.Decimal {
	return decimal.New(stroops, -ClassicDecimals)
}

// FormatAmount renders d with exactly the given number of fractional digits,
// truncating any excess.
func FormatAmount(d decimal.Decimal, decimals int) string {
	return d.Truncate(int32(decimals)).StringFixed(int32(decimals))
}
