// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleType represents the contract category of a sale.
type SaleType string

const (
	SaleTypeDeed  SaleType = "DEED"
	SaleTypeTrust SaleType = "TRUST"
)

// IsValid reports whether the sale type is one of the known categories.
func (t SaleType) IsValid() bool {
	return t == SaleTypeDeed || t == SaleTypeTrust
}

// Sale represents one recorded sale in the working session.
//
// CommissionPercentage, CommissionAmount, DailyVPG, FDIPoints and FDICost are
// snapshots taken when the sale is recorded or edited. They are not refreshed
// when later sales move the cumulative volume into another tier.
type Sale struct {
	ID                   uuid.UUID
	Date                 time.Time // Calendar date, 00:00 UTC
	ClientLastName       string
	NumberOfTours        int
	ManagerName          string
	SaleAmount           decimal.Decimal
	CommissionPercentage decimal.Decimal
	CommissionAmount     decimal.Decimal
	Notes                string
	LeadNumber           string
	FDI                  string // FDI reference
	Rank                 *int   // Optional display rank
	DailyVPG             decimal.Decimal
	IsCancelled          bool
	SaleType             SaleType
	FDIPoints            decimal.Decimal
	FDIGivenPoints       decimal.Decimal
	FDICost              decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewSale creates a new active Sale entity with a fresh identifier.
// Commission and FDI snapshots are left at zero until SetCommissionSnapshot is called.
func NewSale(
	date time.Time,
	clientLastName string,
	numberOfTours int,
	managerName string,
	saleAmount decimal.Decimal,
	saleType SaleType,
	notes string,
	leadNumber string,
	fdi string,
	fdiGivenPoints decimal.Decimal,
) *Sale {
	now := time.Now().UTC()

	return &Sale{
		ID:             uuid.New(),
		Date:           DateOnly(date),
		ClientLastName: clientLastName,
		NumberOfTours:  numberOfTours,
		ManagerName:    managerName,
		SaleAmount:     saleAmount,
		SaleType:       saleType,
		Notes:          notes,
		LeadNumber:     leadNumber,
		FDI:            fdi,
		FDIGivenPoints: fdiGivenPoints,
		IsCancelled:    false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CommissionSnapshot holds the per-sale values locked in at entry time.
type CommissionSnapshot struct {
	CommissionPercentage decimal.Decimal
	CommissionAmount     decimal.Decimal
	DailyVPG             decimal.Decimal
	FDIPoints            decimal.Decimal
	FDICost              decimal.Decimal
}

// SetCommissionSnapshot stores the derived commission and FDI values on the sale.
func (s *Sale) SetCommissionSnapshot(snapshot CommissionSnapshot) {
	s.CommissionPercentage = snapshot.CommissionPercentage
	s.CommissionAmount = snapshot.CommissionAmount
	s.DailyVPG = snapshot.DailyVPG
	s.FDIPoints = snapshot.FDIPoints
	s.FDICost = snapshot.FDICost
}

// Status returns a display label for the cancellation flag.
func (s *Sale) Status() string {
	if s.IsCancelled {
		return "Cancelled"
	}
	return "Active"
}

// Clone returns a copy of the sale that shares no pointers with the original.
func (s *Sale) Clone() *Sale {
	clone := *s
	if s.Rank != nil {
		rank := *s.Rank
		clone.Rank = &rank
	}
	return &clone
}

// DateOnly truncates t to its calendar date at 00:00 UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
