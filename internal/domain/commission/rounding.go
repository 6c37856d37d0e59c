// Package commission holds the tiered commission rate table and the pure
// per-sale calculations derived from it.
package commission

import "github.com/shopspring/decimal"

// Round2 rounds a money or point value to two decimal places, half away from zero.
// Every derived currency or point value goes through Round2 so repeated
// aggregation does not drift by fractions of a cent.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}
