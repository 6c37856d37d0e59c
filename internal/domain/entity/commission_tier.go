package entity

import "github.com/shopspring/decimal"

// CommissionTier is one row of the cumulative-volume commission table.
// A tier applies when the cumulative volume lies in [MinAmount, MaxAmount].
type CommissionTier struct {
	Level                int
	MinAmount            decimal.Decimal
	MaxAmount            decimal.Decimal
	AdditionalCommission decimal.Decimal // Percentage points added to the base rate
}
