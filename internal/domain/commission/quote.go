package commission

import (
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// QuoteInput describes a prospective sale and the period it lands in.
type QuoteInput struct {
	SaleAmount     decimal.Decimal
	SaleType       entity.SaleType
	NumberOfTours  int
	FDIGivenPoints decimal.Decimal
	// PriorVolume is the period's cumulative volume before this sale.
	PriorVolume decimal.Decimal
}

// QuoteResult holds every value derived for a single sale.
type QuoteResult struct {
	CumulativeVolume decimal.Decimal // PriorVolume + SaleAmount
	BaseRate         decimal.Decimal
	AdditionalRate   decimal.Decimal
	TotalRate        decimal.Decimal
	CommissionAmount decimal.Decimal
	Tier             *entity.CommissionTier
	FDIPoints        decimal.Decimal
	FDIAllowedPoints decimal.Decimal
	FDIGivenPoints   decimal.Decimal
	FDICost          decimal.Decimal
	DailyVPG         decimal.Decimal
}

// Quote derives the commission and FDI values for a sale. The FDI allowance of a
// sale is its own FDI points.
func Quote(input QuoteInput) QuoteResult {
	cumulative := input.PriorVolume.Add(input.SaleAmount)

	base := BaseCommissionRate(input.SaleAmount, input.SaleType)
	additional := ResolveAdditionalCommission(cumulative)
	total := base.Add(additional)

	points := FDIPoints(input.SaleAmount)

	result := QuoteResult{
		CumulativeVolume: cumulative,
		BaseRate:         base,
		AdditionalRate:   additional,
		TotalRate:        total,
		CommissionAmount: CommissionAmount(input.SaleAmount, total),
		FDIPoints:        points,
		FDIAllowedPoints: points,
		FDIGivenPoints:   input.FDIGivenPoints,
		FDICost:          FDICost(input.FDIGivenPoints, points),
		DailyVPG:         DailyVPG(input.SaleAmount, input.NumberOfTours),
	}
	if tier, ok := ResolveTier(cumulative); ok {
		result.Tier = &tier
	}
	return result
}

// Snapshot returns the subset of the quote that is locked onto a sale.
func (q QuoteResult) Snapshot() entity.CommissionSnapshot {
	return entity.CommissionSnapshot{
		CommissionPercentage: q.TotalRate,
		CommissionAmount:     q.CommissionAmount,
		DailyVPG:             q.DailyVPG,
		FDIPoints:            q.FDIPoints,
		FDICost:              q.FDICost,
	}
}
