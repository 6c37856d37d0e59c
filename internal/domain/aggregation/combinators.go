package aggregation

import (
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
)

// Combinator folds one active sale into the running totals for a single field group.
// Combinators never mutate the sale and return a new accumulator.
type Combinator func(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals

// Combinators is the fixed order in which every active sale is folded.
// RefreshVPG reads TotalTours and TotalVolume and must stay after AddTours and AddVolume.
var Combinators = []Combinator{
	AddTours,
	AddVolume,
	AddCommission,
	CountActive,
	CountSaleType,
	AddFDI,
	RefreshVPG,
}

// AddTours adds the sale's tours to the period total.
func AddTours(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	acc.TotalTours += sale.NumberOfTours
	return acc
}

// AddVolume adds the sale amount to the period volume.
func AddVolume(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	acc.TotalVolume = acc.TotalVolume.Add(sale.SaleAmount)
	return acc
}

// AddCommission adds the sale's snapshot commission.
func AddCommission(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	acc.TotalCommission = acc.TotalCommission.Add(sale.CommissionAmount)
	return acc
}

// CountActive counts the sale as active.
func CountActive(acc entity.SalesTotals, _ *entity.Sale) entity.SalesTotals {
	acc.ActiveSales++
	return acc
}

// CountSaleType counts the sale under its contract category.
func CountSaleType(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	switch sale.SaleType {
	case entity.SaleTypeDeed:
		acc.DeedSales++
	case entity.SaleTypeTrust:
		acc.TrustSales++
	}
	return acc
}

// AddFDI adds the sale's FDI points, given points and cost.
func AddFDI(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	acc.TotalFDIPoints = acc.TotalFDIPoints.Add(sale.FDIPoints)
	acc.TotalFDIGivenPoints = acc.TotalFDIGivenPoints.Add(sale.FDIGivenPoints)
	acc.TotalFDICost = acc.TotalFDICost.Add(sale.FDICost)
	return acc
}

// RefreshVPG recomputes the period volume per guest from the running tours and volume.
func RefreshVPG(acc entity.SalesTotals, _ *entity.Sale) entity.SalesTotals {
	acc.MonthlyVPG = commission.PeriodVPG(acc.TotalVolume, acc.TotalTours)
	return acc
}
