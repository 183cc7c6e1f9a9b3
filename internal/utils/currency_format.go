package utils

import (
	"github.com/shopspring/decimal"
)

// FormatUpToPrecision rounds amount to at most precision fractional digits and
// drops trailing zeros.
// Example: 123.456 with precision 8 returns "123.456"
// Example: 0.000000015 with precision 8 returns "0.00000002"
func FormatUpToPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatWithPrecision formats amount with exactly precision fractional digits.
// Example: 123.456 with precision 2 returns "123.46"
// Example: 5 with precision 2 returns "5.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// ScaleToUnits multiplies amount by unitsPerWhole and rounds half away from zero.
// It reports false when the result does not fit in an int64.
func ScaleToUnits(amount decimal.Decimal, unitsPerWhole int64) (int64, bool) {
	scaled := amount.Mul(decimal.NewFromInt(unitsPerWhole)).Round(0)
	if !scaled.BigInt().IsInt64() {
		return 0, false
	}
	return scaled.IntPart(), true
}

// UnitsToDecimal divides units by unitsPerWhole and rounds to precision digits.
func UnitsToDecimal(units, unitsPerWhole int64, precision int) decimal.Decimal {
	return decimal.NewFromInt(units).Div(decimal.NewFromInt(unitsPerWhole)).Round(int32(precision))
}
