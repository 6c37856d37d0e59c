package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/entity"
)

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().Float64P("amount", "a", 0, "Sale amount")
	quoteCmd.Flags().StringP("type", "t", string(entity.SaleTypeDeed), "Sale type (DEED or TRUST)")
	quoteCmd.Flags().Float64P("volume", "v", 0, "Period volume before this sale")
	quoteCmd.Flags().Int("tours", 0, "Number of tours")
	quoteCmd.Flags().Float64("given-points", 0, "FDI points given to the client")
	_ = quoteCmd.MarkFlagRequired("amount")
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote the commission snapshot a sale would receive",
	Long: `Quote prices a prospective sale the way the API does when it is recorded:
the base rate comes from the sale itself and the tier bonus from the period
volume including the sale.`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func runQuote(cmd *cobra.Command, _ []string) error {
	amount, _ := cmd.Flags().GetFloat64("amount")
	saleType, _ := cmd.Flags().GetString("type")
	volume, _ := cmd.Flags().GetFloat64("volume")
	tours, _ := cmd.Flags().GetInt("tours")
	givenPoints, _ := cmd.Flags().GetFloat64("given-points")

	if !entity.SaleType(saleType).IsValid() {
		return fmt.Errorf("sale type must be DEED or TRUST, got %q", saleType)
	}
	if amount < 0 || volume < 0 || tours < 0 || givenPoints < 0 {
		return fmt.Errorf("amount, volume, tours and given points must not be negative")
	}

	quote := commission.Quote(commission.QuoteInput{
		SaleAmount:     decimal.NewFromFloat(amount),
		SaleType:       entity.SaleType(saleType),
		NumberOfTours:  tours,
		FDIGivenPoints: decimal.NewFromFloat(givenPoints),
		PriorVolume:    decimal.NewFromFloat(volume),
	})

	tier := "none"
	if quote.Tier != nil {
		tier = fmt.Sprintf("%d", quote.Tier.Level)
	}

	w := newTable(cmd.OutOrStdout())
	row(w, "Cumulative volume", quote.CumulativeVolume.StringFixed(2))
	row(w, "Tier", tier)
	row(w, "Base rate %", quote.BaseRate)
	row(w, "Additional rate %", quote.AdditionalRate)
	row(w, "Total rate %", quote.TotalRate)
	row(w, "Commission", quote.CommissionAmount.StringFixed(2))
	row(w, "FDI points", quote.FDIPoints.StringFixed(2))
	row(w, "FDI given", quote.FDIGivenPoints.StringFixed(2))
	row(w, "FDI cost", quote.FDICost.StringFixed(2))
	row(w, "Daily VPG", quote.DailyVPG.StringFixed(2))
	return w.Flush()
}
