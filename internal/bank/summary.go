package bank

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// summaryPeriod is the fixed label the summary reports. The demo
// ledger is static, so the label is not derived from transaction
// dates.
const summaryPeriod = "Last 30 days"

// SpendingSummary is the payload returned by the spending breakdown.
type SpendingSummary struct {
	SpendingByCategory map[string]json.Number `json:"spending_by_category"`
	TotalSpending      json.Number            `json:"total_spending"`
	Period             string                 `json:"period"`
}

// Summary groups expenses (negative amounts) by category and totals
// their absolute values. Each category figure is rounded to two
// decimals first and the reported total is the sum of those rounded
// figures.
func (s *Store) Summary() *SpendingSummary {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range s.transactions {
		if txn.Amount.IsNegative() {
			totals[txn.Category] = totals[txn.Category].Add(txn.Amount.Abs())
		}
	}

	byCategory := make(map[string]json.Number, len(totals))
	total := decimal.Zero
	for category, sum := range totals {
		rounded := sum.RoundBank(2)
		byCategory[category] = money(rounded)
		total = total.Add(rounded)
	}

	return &SpendingSummary{
		SpendingByCategory: byCategory,
		TotalSpending:      money(total),
		Period:             summaryPeriod,
	}
}
