// Package feed generates a plausible batch of UPI transactions for demo use,
// standing in for a provider account feed. Nothing here touches the network.
package feed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/upitrail/upitrail/internal/config"
	"github.com/upitrail/upitrail/internal/model"
)

// merchant is one entry of the fixed demo directory.
type merchant struct {
	name     string
	category string
	handle   string
}

var merchants = []merchant{
	{"Swiggy", "Food", "swiggy@paytm"},
	{"Zomato", "Food", "zomato@hdfcbank"},
	{"BigBasket", "Groceries", "bigbasket@icici"},
	{"BSES Delhi", "Electricity", "bses@sbi"},
	{"Airtel", "Utilities", "airtel@airtel"},
	{"Indian Oil Petrol Pump", "Fuel", "iocl@paytm"},
	{"Metro Card Recharge", "Transportation", "dmrc@paytm"},
	{"BookMyShow", "Entertainment", "bookmyshow@icici"},
	{"Myntra", "Shopping", "myntra@razorpay"},
	{"Apollo Pharmacy", "Healthcare", "apollo@paytm"},
	{"Starbucks Coffee", "Food", "starbucks@hdfcbank"},
	{"Uber", "Transportation", "uber@paytm"},
	{"Amazon Pay", "Shopping", "amazon@icici"},
	{"Netflix", "Entertainment", "netflix@razorpay"},
	{"Reliance Digital", "Electronics", "reliance@sbi"},
}

// Feed produces simulated transactions.
type Feed struct {
	cfg config.FeedConfig
	rnd *rand.Rand
}

// New creates a Feed with the given tuning.
func New(cfg config.FeedConfig) *Feed {
	return &Feed{
		cfg: cfg,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Count picks a batch size within the configured range.
func (f *Feed) Count() int {
	if f.cfg.CountMax <= f.cfg.CountMin {
		return f.cfg.CountMin
	}
	return f.cfg.CountMin + f.rnd.Intn(f.cfg.CountMax-f.cfg.CountMin+1)
}

// Generate returns n simulated transactions, newest first. Amounts are whole
// rupees between 50 and 5049, dates fall within the configured look-back
// window.
func (f *Feed) Generate(n int) []model.Transaction {
	daysBack := f.cfg.DaysBack
	if daysBack <= 0 {
		daysBack = 30
	}

	txns := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		m := merchants[f.rnd.Intn(len(merchants))]
		amount := decimal.NewFromInt(int64(f.rnd.Intn(5000) + 50))
		date := time.Now().AddDate(0, 0, -f.rnd.Intn(daysBack))

		txns = append(txns, model.Transaction{
			ReferenceID: f.referenceID(),
			OccurredAt:  date,
			Amount:      amount,
			Merchant:    m.name,
			Category:    m.category,
			Description: "Payment to " + m.name,
			UPIHandle:   m.handle,
			Bank:        "Simulated",
		})
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].OccurredAt.After(txns[j].OccurredAt)
	})
	return txns
}

// referenceID mimics provider reference numbers: "UPI" + 12 digits.
func (f *Feed) referenceID() string {
	return fmt.Sprintf("UPI%012d", f.rnd.Int63n(1_000_000_000_000))
}
