// Package valueobject contains domain value objects for the Sales Performance system.
package valueobject

import (
	"time"

	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
)

// WindowKind identifies a reporting window variant.
type WindowKind string

const (
	WindowKindMonthly WindowKind = "monthly"
	WindowKind45Day   WindowKind = "45day"
	WindowKind90Day   WindowKind = "90day"
)

// ReportingWindow selects which sales count towards a reporting period.
// It is implemented by CurrentMonth and Rolling.
type ReportingWindow interface {
	// Kind returns the window variant.
	Kind() WindowKind
	// Contains reports whether a sale dated on date belongs to the window,
	// evaluated at wall-clock time now.
	Contains(date, now time.Time) bool
	// Bounds returns the first and last calendar dates covered at time now.
	Bounds(now time.Time) (start, end time.Time)
}

// CurrentMonth keeps sales from the calendar month of the evaluation time.
// It has no anchor: the month always follows the wall clock.
type CurrentMonth struct{}

// Kind implements ReportingWindow.
func (CurrentMonth) Kind() WindowKind {
	return WindowKindMonthly
}

// Contains implements ReportingWindow.
func (CurrentMonth) Contains(date, now time.Time) bool {
	year, month, _ := now.Date()
	saleYear, saleMonth, _ := date.Date()
	return saleYear == year && saleMonth == month
}

// Bounds implements ReportingWindow.
func (CurrentMonth) Bounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// Rolling keeps sales dated within [Anchor, Anchor + Days] inclusive.
type Rolling struct {
	Days   int
	Anchor time.Time
}

// NewRolling creates a rolling window of 45 or 90 days starting at anchor.
func NewRolling(days int, anchor time.Time) (Rolling, error) {
	if days != 45 && days != 90 {
		return Rolling{}, domainerror.ErrInvalidWindowDays
	}
	return Rolling{Days: days, Anchor: entity.DateOnly(anchor)}, nil
}

// Kind implements ReportingWindow.
func (r Rolling) Kind() WindowKind {
	if r.Days == 90 {
		return WindowKind90Day
	}
	return WindowKind45Day
}

// End returns the last calendar date of the window.
func (r Rolling) End() time.Time {
	return entity.DateOnly(r.Anchor).AddDate(0, 0, r.Days)
}

// Contains implements ReportingWindow. The wall clock is ignored.
func (r Rolling) Contains(date, _ time.Time) bool {
	day := entity.DateOnly(date)
	start := entity.DateOnly(r.Anchor)
	return !day.Before(start) && !day.After(r.End())
}

// Bounds implements ReportingWindow.
func (r Rolling) Bounds(_ time.Time) (start, end time.Time) {
	return entity.DateOnly(r.Anchor), r.End()
}

// ParseReportingWindow builds a window from its kind string and anchor date.
// An empty kind selects the current month.
func ParseReportingWindow(kind string, anchor time.Time) (ReportingWindow, error) {
	switch WindowKind(kind) {
	case "", WindowKindMonthly:
		return CurrentMonth{}, nil
	case WindowKind45Day:
		return NewRolling(45, anchor)
	case WindowKind90Day:
		return NewRolling(90, anchor)
	default:
		return nil, domainerror.ErrInvalidReportingRange
	}
}
