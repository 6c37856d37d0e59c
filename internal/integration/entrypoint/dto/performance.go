package dto

import (
	"github.com/sales-performance/backend/internal/application/usecase/performance"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
)

// TierResponse represents one commission tier.
type TierResponse struct {
	Level                int    `json:"level"`
	MinAmount            string `json:"min_amount"`
	MaxAmount            string `json:"max_amount"`
	AdditionalCommission string `json:"additional_commission"`
}

// TierListResponse represents the commission tier table.
type TierListResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

// PerformanceResponse represents window totals and tier progress.
type PerformanceResponse struct {
	Range                string         `json:"range"`
	PeriodStart          string         `json:"period_start"`
	PeriodEnd            string         `json:"period_end"`
	Totals               TotalsResponse `json:"totals"`
	CurrentTier          *TierResponse  `json:"current_tier"`
	AdditionalCommission string         `json:"additional_commission"`
	NextTier             *TierResponse  `json:"next_tier"`
	VolumeToNextTier     string         `json:"volume_to_next_tier"`
}

// QuoteRequest represents a prospective sale to price.
type QuoteRequest struct {
	SaleAmount       *float64 `json:"sale_amount" binding:"required"`
	SaleType         string   `json:"sale_type" binding:"required"`
	NumberOfTours    int      `json:"number_of_tours"`
	FDIGivenPoints   float64  `json:"fdi_given_points"`
	CumulativeVolume *float64 `json:"cumulative_volume,omitempty"` // Volume before the sale
}

// QuoteResponse represents the snapshot a sale would receive.
type QuoteResponse struct {
	CumulativeVolume string        `json:"cumulative_volume"`
	BaseRate         string        `json:"base_rate"`
	AdditionalRate   string        `json:"additional_rate"`
	TotalRate        string        `json:"total_rate"`
	CommissionAmount string        `json:"commission_amount"`
	Tier             *TierResponse `json:"tier"`
	FDIPoints        string        `json:"fdi_points"`
	FDIAllowedPoints string        `json:"fdi_allowed_points"`
	FDIGivenPoints   string        `json:"fdi_given_points"`
	FDICost          string        `json:"fdi_cost"`
	DailyVPG         string        `json:"daily_vpg"`
}

// ToTierResponse converts a CommissionTier to a TierResponse DTO.
func ToTierResponse(t entity.CommissionTier) TierResponse {
	return TierResponse{
		Level:                t.Level,
		MinAmount:            t.MinAmount.String(),
		MaxAmount:            t.MaxAmount.String(),
		AdditionalCommission: t.AdditionalCommission.String(),
	}
}

func toOptionalTierResponse(t *entity.CommissionTier) *TierResponse {
	if t == nil {
		return nil
	}
	response := ToTierResponse(*t)
	return &response
}

// ToTierListResponse converts the tier table to a TierListResponse DTO.
func ToTierListResponse(tiers []entity.CommissionTier) TierListResponse {
	responses := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		responses[i] = ToTierResponse(t)
	}
	return TierListResponse{Tiers: responses}
}

// ToPerformanceResponse converts a performance summary to a PerformanceResponse DTO.
func ToPerformanceResponse(output *performance.GetPerformanceOutput) PerformanceResponse {
	return PerformanceResponse{
		Range:                string(output.WindowKind),
		PeriodStart:          output.PeriodStart.Format("2006-01-02"),
		PeriodEnd:            output.PeriodEnd.Format("2006-01-02"),
		Totals:               ToTotalsResponse(output.Totals),
		CurrentTier:          toOptionalTierResponse(output.CurrentTier),
		AdditionalCommission: output.AdditionalCommission.String(),
		NextTier:             toOptionalTierResponse(output.NextTier),
		VolumeToNextTier:     output.VolumeToNextTier.String(),
	}
}

// ToQuoteResponse converts a commission quote to a QuoteResponse DTO.
func ToQuoteResponse(q commission.QuoteResult) QuoteResponse {
	return QuoteResponse{
		CumulativeVolume: q.CumulativeVolume.String(),
		BaseRate:         q.BaseRate.String(),
		AdditionalRate:   q.AdditionalRate.String(),
		TotalRate:        q.TotalRate.String(),
		CommissionAmount: q.CommissionAmount.String(),
		Tier:             toOptionalTierResponse(q.Tier),
		FDIPoints:        q.FDIPoints.String(),
		FDIAllowedPoints: q.FDIAllowedPoints.String(),
		FDIGivenPoints:   q.FDIGivenPoints.String(),
		FDICost:          q.FDICost.String(),
		DailyVPG:         q.DailyVPG.String(),
	}
}
