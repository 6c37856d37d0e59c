package dto

import (
	"time"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// SaleRequest represents the request body for recording or replacing a sale.
type SaleRequest struct {
	Date           string   `json:"date" binding:"required"`
	ClientLastName string   `json:"client_last_name" binding:"required"`
	NumberOfTours  int      `json:"number_of_tours"`
	ManagerName    string   `json:"manager_name"`
	SaleAmount     *float64 `json:"sale_amount" binding:"required"`
	SaleType       string   `json:"sale_type" binding:"required"`
	Notes          string   `json:"notes"`
	LeadNumber     string   `json:"lead_number"`
	FDI            string   `json:"fdi"`
	FDIGivenPoints float64  `json:"fdi_given_points"`
}

// UpdateNotesRequest represents the request body for replacing sale notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID                   string    `json:"id"`
	Date                 string    `json:"date"`
	ClientLastName       string    `json:"client_last_name"`
	NumberOfTours        int       `json:"number_of_tours"`
	ManagerName          string    `json:"manager_name"`
	SaleAmount           string    `json:"sale_amount"`
	CommissionPercentage string    `json:"commission_percentage"`
	CommissionAmount     string    `json:"commission_amount"`
	Notes                string    `json:"notes"`
	LeadNumber           string    `json:"lead_number"`
	FDI                  string    `json:"fdi"`
	Rank                 *int      `json:"rank,omitempty"`
	DailyVPG             string    `json:"daily_vpg"`
	IsCancelled          bool      `json:"is_cancelled"`
	Status               string    `json:"status"`
	SaleType             string    `json:"sale_type"`
	FDIPoints            string    `json:"fdi_points"`
	FDIGivenPoints       string    `json:"fdi_given_points"`
	FDICost              string    `json:"fdi_cost"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TotalsResponse represents aggregated totals in API responses.
type TotalsResponse struct {
	TotalTours          int    `json:"total_tours"`
	TotalVolume         string `json:"total_volume"`
	TotalCommission     string `json:"total_commission"`
	ActiveSales         int    `json:"active_sales"`
	CancelledSales      int    `json:"cancelled_sales"`
	DeedSales           int    `json:"deed_sales"`
	TrustSales          int    `json:"trust_sales"`
	MonthlyVPG          string `json:"monthly_vpg"`
	TotalFDIPoints      string `json:"total_fdi_points"`
	TotalFDIGivenPoints string `json:"total_fdi_given_points"`
	TotalFDICost        string `json:"total_fdi_cost"`
}

// SaleListResponse represents the sales of a reporting window and their totals.
type SaleListResponse struct {
	Range       string         `json:"range"`
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	Sales       []SaleResponse `json:"sales"`
	Totals      TotalsResponse `json:"totals"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:                   s.ID.String(),
		Date:                 s.Date.Format("2006-01-02"),
		ClientLastName:       s.ClientLastName,
		NumberOfTours:        s.NumberOfTours,
		ManagerName:          s.ManagerName,
		SaleAmount:           s.SaleAmount.String(),
		CommissionPercentage: s.CommissionPercentage.String(),
		CommissionAmount:     s.CommissionAmount.String(),
		Notes:                s.Notes,
		LeadNumber:           s.LeadNumber,
		FDI:                  s.FDI,
		Rank:                 s.Rank,
		DailyVPG:             s.DailyVPG.String(),
		IsCancelled:          s.IsCancelled,
		Status:               s.Status(),
		SaleType:             string(s.SaleType),
		FDIPoints:            s.FDIPoints.String(),
		FDIGivenPoints:       s.FDIGivenPoints.String(),
		FDICost:              s.FDICost.String(),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// ToSaleResponses converts a list of sales, never returning nil.
func ToSaleResponses(sales []*entity.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, s := range sales {
		responses[i] = ToSaleResponse(s)
	}
	return responses
}

// ToTotalsResponse converts domain totals to a TotalsResponse DTO.
func ToTotalsResponse(t entity.SalesTotals) TotalsResponse {
	return TotalsResponse{
		TotalTours:          t.TotalTours,
		TotalVolume:         t.TotalVolume.String(),
		TotalCommission:     t.TotalCommission.String(),
		ActiveSales:         t.ActiveSales,
		CancelledSales:      t.CancelledSales,
		DeedSales:           t.DeedSales,
		TrustSales:          t.TrustSales,
		MonthlyVPG:          t.MonthlyVPG.String(),
		TotalFDIPoints:      t.TotalFDIPoints.String(),
		TotalFDIGivenPoints: t.TotalFDIGivenPoints.String(),
		TotalFDICost:        t.TotalFDICost.String(),
	}
}
