package entity

import "github.com/shopspring/decimal"

// SalesTotals represents aggregated performance over a set of sales.
// Totals are derived on every read and never stored.
type SalesTotals struct {
	TotalTours          int
	TotalVolume         decimal.Decimal
	TotalCommission     decimal.Decimal
	ActiveSales         int
	CancelledSales      int
	DeedSales           int
	TrustSales          int
	MonthlyVPG          decimal.Decimal // Period volume per guest
	TotalFDIPoints      decimal.Decimal
	TotalFDIGivenPoints decimal.Decimal
	TotalFDICost        decimal.Decimal
}

// NewSalesTotals returns zeroed totals carrying the given cancelled count.
func NewSalesTotals(cancelledSales int) SalesTotals {
	return SalesTotals{
		TotalVolume:         decimal.Zero,
		TotalCommission:     decimal.Zero,
		CancelledSales:      cancelledSales,
		MonthlyVPG:          decimal.Zero,
		TotalFDIPoints:      decimal.Zero,
		TotalFDIGivenPoints: decimal.Zero,
		TotalFDICost:        decimal.Zero,
	}
}
