// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the session database.
// Money and point columns are stored as text to keep exact decimal values.
type SaleModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position             int64           `gorm:"not null;uniqueIndex"` // Insertion order within the session
	Date                 time.Time       `gorm:"type:date;not null;index"`
	ClientLastName       string          `gorm:"type:varchar(100);not null"`
	NumberOfTours        int             `gorm:"not null;default:0"`
	ManagerName          string          `gorm:"type:varchar(100)"`
	SaleAmount           decimal.Decimal `gorm:"type:text;not null"`
	CommissionPercentage decimal.Decimal `gorm:"type:text;not null"`
	CommissionAmount     decimal.Decimal `gorm:"type:text;not null"`
	Notes                string          `gorm:"type:text"`
	LeadNumber           string          `gorm:"type:varchar(100)"`
	FDI                  string          `gorm:"column:fdi;type:varchar(100)"`
	Rank                 *int
	DailyVPG             decimal.Decimal `gorm:"column:daily_vpg;type:text;not null"`
	IsCancelled          bool            `gorm:"not null;default:false;index"`
	SaleType             string          `gorm:"type:varchar(10);not null"`
	FDIPoints            decimal.Decimal `gorm:"column:fdi_points;type:text;not null"`
	FDIGivenPoints       decimal.Decimal `gorm:"column:fdi_given_points;type:text;not null"`
	FDICost              decimal.Decimal `gorm:"column:fdi_cost;type:text;not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:                   m.ID,
		Date:                 entity.DateOnly(m.Date),
		ClientLastName:       m.ClientLastName,
		NumberOfTours:        m.NumberOfTours,
		ManagerName:          m.ManagerName,
		SaleAmount:           m.SaleAmount,
		CommissionPercentage: m.CommissionPercentage,
		CommissionAmount:     m.CommissionAmount,
		Notes:                m.Notes,
		LeadNumber:           m.LeadNumber,
		FDI:                  m.FDI,
		Rank:                 m.Rank,
		DailyVPG:             m.DailyVPG,
		IsCancelled:          m.IsCancelled,
		SaleType:             entity.SaleType(m.SaleType),
		FDIPoints:            m.FDIPoints,
		FDIGivenPoints:       m.FDIGivenPoints,
		FDICost:              m.FDICost,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
// Position is assigned by the repository.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	var rank *int
	if sale.Rank != nil {
		r := *sale.Rank
		rank = &r
	}

	return &SaleModel{
		ID:                   sale.ID,
		Date:                 entity.DateOnly(sale.Date),
		ClientLastName:       sale.ClientLastName,
		NumberOfTours:        sale.NumberOfTours,
		ManagerName:          sale.ManagerName,
		SaleAmount:           sale.SaleAmount,
		CommissionPercentage: sale.CommissionPercentage,
		CommissionAmount:     sale.CommissionAmount,
		Notes:                sale.Notes,
		LeadNumber:           sale.LeadNumber,
		FDI:                  sale.FDI,
		Rank:                 rank,
		DailyVPG:             sale.DailyVPG,
		IsCancelled:          sale.IsCancelled,
		SaleType:             string(sale.SaleType),
		FDIPoints:            sale.FDIPoints,
		FDIGivenPoints:       sale.FDIGivenPoints,
		FDICost:              sale.FDICost,
		CreatedAt:            sale.CreatedAt,
		UpdatedAt:            sale.UpdatedAt,
	}
}
