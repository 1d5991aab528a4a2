package bank

import (
	"encoding/json"

	"github.com/bankmcp/bankmcp/internal/errors"
	"github.com/shopspring/decimal"
)

// maxLoanTermYears bounds the amortization exponent so a hostile or
// confused caller cannot request an absurdly long schedule.
const maxLoanTermYears = 100

// LoanResult is the payload returned by a loan payment calculation.
// TotalPayment is the rounded monthly payment times the number of
// payments, so the three monetary figures are exactly consistent.
type LoanResult struct {
	MonthlyPayment json.Number `json:"monthly_payment"`
	TotalPayment   json.Number `json:"total_payment"`
	TotalInterest  json.Number `json:"total_interest"`
	Principal      json.Number `json:"principal"`
	AnnualRate     json.Number `json:"annual_rate"`
	TermYears      int         `json:"term_years"`
	NumPayments    int         `json:"num_payments"`
}

// Loan computes the monthly payment for a fixed-rate loan using the
// standard amortization formula. annualRate is a percentage, so 6.5
// means 6.5% per year. A zero rate degenerates to straight-line
// principal over the number of payments. Monetary outputs are rounded
// to two decimals with banker's rounding.
func Loan(principal, annualRate decimal.Decimal, years int) (*LoanResult, error) {
	if years <= 0 {
		return nil, errors.InvalidArgument("term_years must be positive")
	}
	if years > maxLoanTermYears {
		return nil, errors.InvalidArgument("term_years must be 100 or less")
	}
	if principal.IsNegative() {
		return nil, errors.InvalidArgument("principal must not be negative")
	}
	if annualRate.IsNegative() {
		return nil, errors.InvalidArgument("annual_rate must not be negative")
	}

	numPayments := years * 12
	n := decimal.NewFromInt(int64(numPayments))
	monthlyRate := annualRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))

	var monthly decimal.Decimal
	if monthlyRate.IsZero() {
		monthly = principal.Div(n)
	} else {
		one := decimal.NewFromInt(1)
		growth := one.Add(monthlyRate).Pow(n) // (1+r)^n
		monthly = principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
	}

	monthly = monthly.RoundBank(2)
	total := monthly.Mul(n)
	interest := total.Sub(principal).RoundBank(2)

	return &LoanResult{
		MonthlyPayment: money(monthly),
		TotalPayment:   money(total),
		TotalInterest:  money(interest),
		Principal:      json.Number(principal.String()),
		AnnualRate:     json.Number(annualRate.String()),
		TermYears:      years,
		NumPayments:    numPayments,
	}, nil
}
