// Package cli implements the salesctl command line tool.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salesctl",
	Short: "Inspect commission tiers, price sales and summarise exported reports",
	Long: `salesctl works offline against the commission rules of the sales API.
It prints the tier table, quotes the commission a prospective sale would lock in,
and re-aggregates a CSV report downloaded from /api/v1/export.`,
	SilenceUsage: true,
}

// Execute runs the root command with os.Args.
func Execute() error {
	return rootCmd.Execute()
}

// newTable returns a tab-aligned writer over out. Callers must Flush it.
func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func row(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s\t%v\n", label, value)
}
