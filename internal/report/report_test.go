package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upitrail/upitrail/internal/model"
)

func tx(amount int64, category string, year int, month time.Month) model.Transaction {
	return model.Transaction{
		ReferenceID: "r",
		OccurredAt:  time.Date(year, month, 10, 0, 0, 0, 0, time.Local),
		Amount:      decimal.NewFromInt(amount),
		Merchant:    "M",
		Category:    category,
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, "0.00", Total(nil).StringFixed(2))

	txns := []model.Transaction{
		tx(100, "Food", 2024, time.January),
		tx(250, "Shopping", 2024, time.February),
	}
	assert.Equal(t, "350.00", Total(txns).StringFixed(2))
}

func TestMonthTotal(t *testing.T) {
	txns := []model.Transaction{
		tx(100, "Food", 2024, time.January),
		tx(40, "Food", 2024, time.January),
		tx(250, "Shopping", 2024, time.February),
	}

	jan := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "140.00", MonthTotal(txns, jan).StringFixed(2))

	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "0.00", MonthTotal(txns, march).StringFixed(2))
}

func TestByCategory(t *testing.T) {
	txns := []model.Transaction{
		tx(100, "Food", 2024, time.January),
		tx(300, "Shopping", 2024, time.January),
		tx(50, "Food", 2024, time.February),
		tx(20, "", 2024, time.February),
	}

	stats := ByCategory(txns)
	require.Len(t, stats, 3)

	assert.Equal(t, "Shopping", stats[0].Category)
	assert.Equal(t, "300.00", stats[0].Amount.StringFixed(2))
	assert.Equal(t, 1, stats[0].Count)

	assert.Equal(t, "Food", stats[1].Category)
	assert.Equal(t, "150.00", stats[1].Amount.StringFixed(2))
	assert.Equal(t, 2, stats[1].Count)

	assert.Equal(t, "", stats[2].Category)
	assert.Equal(t, "20.00", stats[2].Amount.StringFixed(2))
}

func TestByCategory_StableOnEqualAmounts(t *testing.T) {
	txns := []model.Transaction{
		tx(100, "Food", 2024, time.January),
		tx(100, "Shopping", 2024, time.January),
	}

	stats := ByCategory(txns)
	require.Len(t, stats, 2)
	assert.Equal(t, "Food", stats[0].Category)
	assert.Equal(t, "Shopping", stats[1].Category)
}

func TestMonthlyTrend(t *testing.T) {
	txns := []model.Transaction{
		tx(100, "Food", 2024, time.January),
		tx(50, "Food", 2024, time.March),
		tx(25, "Food", 2023, time.December),
	}

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	trend := MonthlyTrend(txns, now, 4)
	require.Len(t, trend, 4)

	assert.Equal(t, "Dec 2023", trend[0].Month)
	assert.Equal(t, "25.00", trend[0].Amount.StringFixed(2))
	assert.Equal(t, "Jan 2024", trend[1].Month)
	assert.Equal(t, "100.00", trend[1].Amount.StringFixed(2))
	assert.Equal(t, "Feb 2024", trend[2].Month)
	assert.Equal(t, "0.00", trend[2].Amount.StringFixed(2))
	assert.Equal(t, "Mar 2024", trend[3].Month)
	assert.Equal(t, "50.00", trend[3].Amount.StringFixed(2))
}
