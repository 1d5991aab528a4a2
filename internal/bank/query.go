package bank

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/shopspring/decimal"
)

// BalanceResult is the payload returned by a balance lookup.
type BalanceResult struct {
	AccountID   string      `json:"account_id"`
	Balance     json.Number `json:"balance"`
	AccountType string      `json:"account_type"`
	Owner       string      `json:"owner"`
	Currency    string      `json:"currency"`
	AsOf        string      `json:"as_of"`
}

// Balance looks up an account and reports its current balance.
// Unknown account IDs yield an ACCOUNT_NOT_FOUND error.
func (s *Store) Balance(accountID string) (*BalanceResult, error) {
	for _, acc := range s.accounts {
		if acc.ID == accountID {
			return &BalanceResult{
				AccountID:   acc.ID,
				Balance:     money(acc.Balance),
				AccountType: acc.Type,
				Owner:       acc.Owner,
				Currency:    "USD",
				AsOf:        s.now().Format(time.RFC3339),
			}, nil
		}
	}
	return nil, errors.AccountNotFound(accountID)
}

// Recent returns the first limit transactions in stored order, most
// recent first. A limit beyond the table length returns the whole
// table; a negative limit is an INVALID_ARGUMENT error.
func (s *Store) Recent(limit int) ([]Transaction, error) {
	if limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}
	if limit > len(s.transactions) {
		limit = len(s.transactions)
	}
	out := make([]Transaction, limit)
	copy(out, s.transactions[:limit])
	return out, nil
}

// Filter selects transactions. Zero values mean the field is unset
// and does not constrain the search.
type Filter struct {
	Category  string          // exact category name, case-insensitive
	Merchant  string          // merchant substring, case-insensitive
	MinAmount decimal.Decimal // keeps rows with |amount| >= MinAmount
}

// Search returns the transactions matching every set filter field, in
// stored order. No matches is an empty result, never an error.
func (s *Store) Search(f Filter) []Transaction {
	out := make([]Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if f.Category != "" && !strings.EqualFold(txn.Category, f.Category) {
			continue
		}
		if f.Merchant != "" && !strings.Contains(strings.ToLower(txn.Merchant), strings.ToLower(f.Merchant)) {
			continue
		}
		if f.MinAmount.IsPositive() && txn.Amount.Abs().LessThan(f.MinAmount) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// Methods returns every stored payment method in stored order.
func (s *Store) Methods() []PaymentMethod {
	out := make([]PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}
