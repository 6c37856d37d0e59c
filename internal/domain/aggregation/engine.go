// Package aggregation derives period totals from a session's sales.
//
// Aggregate filters sales by a reporting window, splits them into active and
// cancelled, and folds the active ones into entity.SalesTotals. It is pure: the
// input slice and the sales it points to are never modified, and the same input
// always yields the same totals.
package aggregation

import (
	"time"

	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// Result is the outcome of a single aggregation pass.
type Result struct {
	Filtered  []*entity.Sale // Sales inside the window, in input order
	Active    []*entity.Sale
	Cancelled []*entity.Sale
	Totals    entity.SalesTotals
}

// Aggregate computes the totals of the sales that fall inside window at time now.
func Aggregate(sales []*entity.Sale, window valueobject.ReportingWindow, now time.Time) Result {
	filtered := Filter(sales, window, now)
	active, cancelled := Partition(filtered)

	return Result{
		Filtered:  filtered,
		Active:    active,
		Cancelled: cancelled,
		Totals:    Fold(active, len(cancelled)),
	}
}

// Filter returns the sales dated inside window, keeping their order.
func Filter(sales []*entity.Sale, window valueobject.ReportingWindow, now time.Time) []*entity.Sale {
	filtered := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale == nil {
			continue
		}
		if window.Contains(sale.Date, now) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// Partition splits sales into active and cancelled, keeping their order.
func Partition(sales []*entity.Sale) (active, cancelled []*entity.Sale) {
	active = make([]*entity.Sale, 0, len(sales))
	cancelled = make([]*entity.Sale, 0)
	for _, sale := range sales {
		if sale.IsCancelled {
			cancelled = append(cancelled, sale)
			continue
		}
		active = append(active, sale)
	}
	return active, cancelled
}

// Fold folds active sales left to right into totals seeded with cancelledCount.
func Fold(active []*entity.Sale, cancelledCount int) entity.SalesTotals {
	acc := entity.NewSalesTotals(cancelledCount)
	for _, sale := range active {
		acc = Step(acc, sale)
	}
	return acc
}

// Step applies every combinator, in order, for one active sale.
func Step(acc entity.SalesTotals, sale *entity.Sale) entity.SalesTotals {
	for _, combine := range Combinators {
		acc = combine(acc, sale)
	}
	return acc
}
