package commission

import (
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
)

var (
	// fdiPointsPerDollar is the FDI point allowance earned per dollar of sale.
	fdiPointsPerDollar = decimal.RequireFromString("0.55")
	// fdiCostPerPoint is the charge per FDI point given above the allowance.
	fdiCostPerPoint = decimal.RequireFromString("0.048")

	deedMidThreshold  = decimal.NewFromInt(20000)
	deedHighThreshold = decimal.NewFromInt(50000)

	rateLow  = decimal.NewFromInt(4)
	rateMid  = decimal.NewFromInt(5)
	rateHigh = decimal.NewFromInt(6)

	hundred = decimal.NewFromInt(100)
)

// BaseCommissionRate returns the base commission percentage for a sale.
// TRUST sales always earn 6%; DEED sales earn 6% from 50000, 5% from 20000 and 4% below.
func BaseCommissionRate(saleAmount decimal.Decimal, saleType entity.SaleType) decimal.Decimal {
	if saleType == entity.SaleTypeTrust {
		return rateHigh
	}
	if saleAmount.GreaterThanOrEqual(deedHighThreshold) {
		return rateHigh
	}
	if saleAmount.GreaterThanOrEqual(deedMidThreshold) {
		return rateMid
	}
	return rateLow
}

// TotalCommissionRate returns the base rate plus the tier bonus.
// cumulativeVolume must already include saleAmount: the tier is the one the sale
// pushes the period total into.
func TotalCommissionRate(saleAmount, cumulativeVolume decimal.Decimal, saleType entity.SaleType) decimal.Decimal {
	return BaseCommissionRate(saleAmount, saleType).Add(ResolveAdditionalCommission(cumulativeVolume))
}

// CommissionAmount converts a percentage rate into a rounded commission on saleAmount.
func CommissionAmount(saleAmount, ratePercent decimal.Decimal) decimal.Decimal {
	return Round2(saleAmount.Mul(ratePercent).Div(hundred))
}

// FDIPoints returns the FDI point allowance earned by a sale.
func FDIPoints(saleAmount decimal.Decimal) decimal.Decimal {
	return Round2(saleAmount.Mul(fdiPointsPerDollar))
}

// FDICost returns the charge for FDI points given above the allowance.
// It is zero when givenPoints does not exceed allowedPoints.
func FDICost(givenPoints, allowedPoints decimal.Decimal) decimal.Decimal {
	if givenPoints.LessThanOrEqual(allowedPoints) {
		return decimal.Zero
	}
	excess := givenPoints.Sub(allowedPoints)
	return Round2(excess.Mul(fdiCostPerPoint))
}

// DailyVPG returns the volume per guest of a single sale, or zero with no tours.
func DailyVPG(saleAmount decimal.Decimal, tours int) decimal.Decimal {
	return perGuest(saleAmount, tours)
}

// PeriodVPG returns the volume per guest over a period, or zero with no tours.
func PeriodVPG(cumulativeVolume decimal.Decimal, cumulativeTours int) decimal.Decimal {
	return perGuest(cumulativeVolume, cumulativeTours)
}

func perGuest(volume decimal.Decimal, tours int) decimal.Decimal {
	if tours == 0 {
		return decimal.Zero
	}
	return Round2(volume.Div(decimal.NewFromInt(int64(tours))))
}
