package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/commission"
	"github.com/sales-performance/backend/internal/domain/valueobject"
	"github.com/sales-performance/backend/internal/integration/exporter"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("file", "f", "", "CSV report exported by the API")
	reportCmd.Flags().StringP("range", "r", string(valueobject.WindowKindMonthly), "Reporting window: monthly, 45day or 90day")
	reportCmd.Flags().String("start-date", "", "Rolling window anchor as YYYY-MM-DD (default today)")
	_ = reportCmd.MarkFlagRequired("file")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate the sales of an exported CSV report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	kind, _ := cmd.Flags().GetString("range")
	startDate, _ := cmd.Flags().GetString("start-date")

	current := now()
	anchor := current
	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return fmt.Errorf("start-date must be formatted as YYYY-MM-DD: %w", err)
		}
		anchor = parsed
	}

	window, err := valueobject.ParseReportingWindow(kind, anchor)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	sales, err := exporter.ReadSales(f)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	result := aggregation.Aggregate(sales, window, current)
	totals := result.Totals
	start, end := window.Bounds(current)

	tier := "none"
	if t, ok := commission.ResolveTier(totals.TotalVolume); ok {
		tier = fmt.Sprintf("%d (+%s%%)", t.Level, t.AdditionalCommission)
	}

	w := newTable(cmd.OutOrStdout())
	row(w, "Window", fmt.Sprintf("%s %s..%s", window.Kind(), start.Format("2006-01-02"), end.Format("2006-01-02")))
	row(w, "Sales in window", fmt.Sprintf("%d of %d", len(result.Filtered), len(sales)))
	row(w, "Active", totals.ActiveSales)
	row(w, "Cancelled", totals.CancelledSales)
	row(w, "DEED / TRUST", fmt.Sprintf("%d / %d", totals.DeedSales, totals.TrustSales))
	row(w, "Tours", totals.TotalTours)
	row(w, "Volume", totals.TotalVolume.StringFixed(2))
	row(w, "Commission", totals.TotalCommission.StringFixed(2))
	row(w, "VPG", totals.MonthlyVPG.StringFixed(2))
	row(w, "FDI points", totals.TotalFDIPoints.StringFixed(2))
	row(w, "FDI given", totals.TotalFDIGivenPoints.StringFixed(2))
	row(w, "FDI cost", totals.TotalFDICost.StringFixed(2))
	row(w, "Tier", tier)
	return w.Flush()
}
