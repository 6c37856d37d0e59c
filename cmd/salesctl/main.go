// Package main is the entry point for the salesctl command line tool.
package main

import (
	"os"

	"github.com/sales-performance/backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
