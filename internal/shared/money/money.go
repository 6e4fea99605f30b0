// Package money provides exact rounding helpers for monetary and
// percentage values.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to 2 decimal places using half-up rounding (halves
// round away from zero). All monetary values and percentage returns in
// report output go through this helper so rounding stays consistent
// across engines.
func Round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
