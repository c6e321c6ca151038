// Package report computes the aggregate figures callers display: totals,
// per-category breakdowns and a monthly spend trend. All functions are plain
// folds over a transaction slice.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/upitrail/upitrail/internal/model"
)

const monthKey = "Jan 2006"

// Total sums all transaction amounts.
func Total(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txns {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// MonthTotal sums amounts for the calendar month containing t.
func MonthTotal(txns []model.Transaction, t time.Time) decimal.Decimal {
	key := t.Format(monthKey)
	sum := decimal.Zero
	for _, tx := range txns {
		if tx.OccurredAt.Format(monthKey) == key {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// ByCategory returns per-category totals and counts, largest amount first.
// Uncategorized transactions group under the empty string.
func ByCategory(txns []model.Transaction) []model.CategoryStat {
	byName := make(map[string]*model.CategoryStat)
	var order []string

	for _, tx := range txns {
		stat, ok := byName[tx.Category]
		if !ok {
			stat = &model.CategoryStat{Category: tx.Category, Amount: decimal.Zero}
			byName[tx.Category] = stat
			order = append(order, tx.Category)
		}
		stat.Amount = stat.Amount.Add(tx.Amount)
		stat.Count++
	}

	stats := make([]model.CategoryStat, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})
	return stats
}

// MonthlyTrend returns totals for the last n calendar months ending at now,
// oldest first. Months with no transactions appear with a zero total.
func MonthlyTrend(txns []model.Transaction, now time.Time, n int) []model.MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txns {
		key := tx.OccurredAt.Format(monthKey)
		totals[key] = totals[key].Add(tx.Amount)
	}

	trend := make([]model.MonthTotal, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		key := first.AddDate(0, i, 0).Format(monthKey)
		trend = append(trend, model.MonthTotal{Month: key, Amount: totals[key]})
	}
	return trend
}
