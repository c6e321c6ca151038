package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/upitrail/upitrail/internal/config"
	"github.com/upitrail/upitrail/internal/ledger"
	"github.com/upitrail/upitrail/internal/report"
)

const trendMonths = 6

func newStatsCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show spending totals, category breakdown and monthly trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runStats(absDir)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}

func runStats(repoRoot string) error {
	currency := "INR"
	cfg, err := config.Load(filepath.Join(repoRoot, config.FileName))
	if err == nil && cfg.Currency != "" {
		currency = cfg.Currency
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	txns, err := ledger.NewService(repoRoot).Load()
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	now := time.Now()
	total := report.Total(txns)
	avg := total.Div(decimal.NewFromInt(int64(len(txns)))).Round(2)

	fmt.Printf("Transactions:  %d\n", len(txns))
	fmt.Printf("Total spend:   %s %s\n", currency, total.StringFixed(2))
	fmt.Printf("This month:    %s %s\n", currency, report.MonthTotal(txns, now).StringFixed(2))
	fmt.Printf("Average:       %s %s\n", currency, avg.StringFixed(2))

	fmt.Println("\nBy category:")
	for _, stat := range report.ByCategory(txns) {
		name := stat.Category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Printf("  %-16s %10s  (%d)\n", name, stat.Amount.StringFixed(2), stat.Count)
	}

	fmt.Printf("\nLast %d months:\n", trendMonths)
	for _, mt := range report.MonthlyTrend(txns, now, trendMonths) {
		fmt.Printf("  %-10s %12s\n", mt.Month, mt.Amount.StringFixed(2))
	}

	return nil
}
