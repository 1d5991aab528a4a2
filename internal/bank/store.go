// Package bank implements the banking domain behind the MCP surface:
// an immutable in-memory dataset plus the pure queries and calculations
// the tools expose.
//
// Every table is seeded once at construction and never mutated, so a
// Store is safe for concurrent use without locking. The only
// non-determinism is the wall clock behind the as_of stamps, which is
// injectable for tests.
package bank

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/shopspring/decimal"
)

// Account types offered by the bank.
const (
	TypeChecking    = "Checking"
	TypeSavings     = "Savings"
	TypeMoneyMarket = "Money Market"
	TypeCD          = "CD"
)

// Payment method types.
const (
	MethodCreditCard  = "credit_card"
	MethodBankAccount = "bank_account"
)

// Account is a customer bank account.
type Account struct {
	ID      string
	Balance decimal.Decimal
	Type    string
	Owner   string
}

// Transaction is one ledger row. Amount is signed: negative for
// expenses, positive for income.
type Transaction struct {
	Date     string // calendar date, YYYY-MM-DD
	Amount   decimal.Decimal
	Merchant string
	Category string
}

// MarshalJSON emits the amount as a plain JSON number with two fixed
// decimals instead of the quoted string the decimal library defaults to.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date     string      `json:"date"`
		Amount   json.Number `json:"amount"`
		Merchant string      `json:"merchant"`
		Category string      `json:"category"`
	}{t.Date, money(t.Amount), t.Merchant, t.Category})
}

// PaymentMethod is a stored card or linked bank account.
type PaymentMethod struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	LastFour  string `json:"last_four"`
	IsDefault bool   `json:"is_default"`
}

// Store holds the process-lifetime banking dataset.
type Store struct {
	accounts     []Account
	transactions []Transaction
	methods      []PaymentMethod
	now          func() time.Time
}

// NewStore validates the dataset and returns an immutable Store.
// Transactions are kept in the given order, which must be
// most-recent-first.
func NewStore(accounts []Account, transactions []Transaction, methods []PaymentMethod) (*Store, error) {
	seen := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if acc.ID == "" {
			return nil, errors.InvalidArgument("account id must not be empty")
		}
		if seen[acc.ID] {
			return nil, errors.InvalidArgument(fmt.Sprintf("duplicate account id %s", acc.ID))
		}
		seen[acc.ID] = true
		if !validAccountType(acc.Type) {
			return nil, errors.InvalidArgument(fmt.Sprintf("unknown account type %q for account %s", acc.Type, acc.ID))
		}
	}

	for _, txn := range transactions {
		if _, err := time.Parse("2006-01-02", txn.Date); err != nil {
			return nil, errors.InvalidArgument(fmt.Sprintf("transaction date %q is not YYYY-MM-DD", txn.Date))
		}
	}

	defaults := 0
	for _, pm := range methods {
		if pm.Type != MethodCreditCard && pm.Type != MethodBankAccount {
			return nil, errors.InvalidArgument(fmt.Sprintf("unknown payment method type %q", pm.Type))
		}
		if !isFourDigits(pm.LastFour) {
			return nil, errors.InvalidArgument(fmt.Sprintf("payment method %q last_four must be a 4-digit string", pm.Name))
		}
		if pm.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, errors.InvalidArgument("at most one payment method may be the default")
	}

	return &Store{
		accounts:     accounts,
		transactions: transactions,
		methods:      methods,
		now:          time.Now,
	}, nil
}

// SetClock overrides the time source used for as_of stamps.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Seed returns the demo dataset the server ships with.
func Seed() *Store {
	store, err := NewStore(seedAccounts(), seedTransactions(), seedMethods())
	if err != nil {
		// The seed tables are static; failing validation here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return store
}

func seedAccounts() []Account {
	return []Account{
		{ID: "ACC001", Balance: amount("5420.50"), Type: TypeChecking, Owner: "John Smith"},
		{ID: "ACC002", Balance: amount("12500.00"), Type: TypeSavings, Owner: "John Smith"},
	}
}

func seedTransactions() []Transaction {
	return []Transaction{
		{Date: "2025-02-15", Amount: amount("-45.00"), Merchant: "Starbucks", Category: "Restaurant"},
		{Date: "2025-02-14", Amount: amount("-120.00"), Merchant: "Amazon", Category: "Shopping"},
		{Date: "2025-02-13", Amount: amount("3500.00"), Merchant: "Employer Inc", Category: "Salary"},
		{Date: "2025-02-12", Amount: amount("-65.00"), Merchant: "Shell Gas", Category: "Gas"},
		{Date: "2025-02-11", Amount: amount("-89.99"), Merchant: "Netflix", Category: "Entertainment"},
	}
}

func seedMethods() []PaymentMethod {
	return []PaymentMethod{
		{Type: MethodCreditCard, Name: "Visa Gold", LastFour: "4242", IsDefault: true},
		{Type: MethodCreditCard, Name: "Mastercard", LastFour: "8888", IsDefault: false},
		{Type: MethodBankAccount, Name: "Checking", LastFour: "1234", IsDefault: false},
	}
}

func validAccountType(t string) bool {
	switch t {
	case TypeChecking, TypeSavings, TypeMoneyMarket, TypeCD:
		return true
	}
	return false
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// amount parses a static decimal literal from the seed tables.
func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// money renders a decimal as a JSON number with two fixed decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
