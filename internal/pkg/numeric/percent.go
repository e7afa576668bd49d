package numeric

import "github.com/shopspring/decimal"

// Percent returns numerator/denominator as a percentage rounded to two
// decimals. A zero or negative denominator yields 0, never NaN or Inf.
func Percent(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return Round2(numerator / denominator * 100)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Mean returns the arithmetic mean of sum over count, rounded to two
// decimals, 0 when count is 0.
func Mean(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return Round2(sum / float64(count))
}
