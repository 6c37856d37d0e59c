package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sales-performance/backend/internal/domain/commission"
)

func init() {
	rootCmd.AddCommand(tiersCmd)
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Print the cumulative-volume commission tiers",
	Args:  cobra.NoArgs,
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, _ []string) error {
	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "LEVEL\tMIN\tMAX\tADDITIONAL %")
	for _, tier := range commission.Tiers() {
		fmt.Fprintf(w, "%d\t%s\t%s\t+%s\n",
			tier.Level,
			tier.MinAmount.StringFixed(2),
			tier.MaxAmount.StringFixed(2),
			tier.AdditionalCommission,
		)
	}
	return w.Flush()
}
