package commission

import (
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// tiers is ordered by MinAmount. The last tier has no effective upper bound.
var tiers = []entity.CommissionTier{
	newTier(1, 162500, 243749, "1"),
	newTier(2, 243750, 324999, "2"),
	newTier(3, 325000, 406249, "3"),
	newTier(4, 406250, 487499, "3.5"),
	newTier(5, 487500, 584999, "4"),
	newTier(6, 585000, 682499, "5"),
	newTier(7, 682500, 893749, "5.5"),
	newTier(8, 893750, 999999999, "6"),
}

func newTier(level int, minAmount, maxAmount int64, additional string) entity.CommissionTier {
	return entity.CommissionTier{
		Level:                level,
		MinAmount:            decimal.NewFromInt(minAmount),
		MaxAmount:            decimal.NewFromInt(maxAmount),
		AdditionalCommission: decimal.RequireFromString(additional),
	}
}

// Tiers returns a copy of the commission tier table.
func Tiers() []entity.CommissionTier {
	out := make([]entity.CommissionTier, len(tiers))
	copy(out, tiers)
	return out
}

// ResolveTier returns the tier whose volume bracket contains cumulativeVolume.
//
// A bracket runs from its MinAmount up to the next tier's MinAmount, so for
// whole-dollar volumes it matches [MinAmount, MaxAmount] exactly and cents between
// one tier's MaxAmount and the next MinAmount stay on the lower tier. The top
// tier is unbounded. ok is false below the first tier.
func ResolveTier(cumulativeVolume decimal.Decimal) (tier entity.CommissionTier, ok bool) {
	for i, t := range tiers {
		if cumulativeVolume.LessThan(t.MinAmount) {
			return entity.CommissionTier{}, false
		}
		if i == len(tiers)-1 || cumulativeVolume.LessThan(tiers[i+1].MinAmount) {
			return t, true
		}
	}
	return entity.CommissionTier{}, false
}

// ResolveAdditionalCommission returns the additional commission percentage earned
// at cumulativeVolume, or zero below the first tier.
func ResolveAdditionalCommission(cumulativeVolume decimal.Decimal) decimal.Decimal {
	tier, ok := ResolveTier(cumulativeVolume)
	if !ok {
		return decimal.Zero
	}
	return tier.AdditionalCommission
}

// NextTier returns the first tier that starts above cumulativeVolume.
// ok is false once the top tier has been reached.
func NextTier(cumulativeVolume decimal.Decimal) (tier entity.CommissionTier, ok bool) {
	for _, t := range tiers {
		if t.MinAmount.GreaterThan(cumulativeVolume) {
			return t, true
		}
	}
	return entity.CommissionTier{}, false
}
