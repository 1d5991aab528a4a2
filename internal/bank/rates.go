package bank

import "encoding/json"

// AccountTypesDoc is the static account-types resource payload.
type AccountTypesDoc struct {
	AccountTypes []string `json:"account_types"`
	Description  string   `json:"description"`
}

// InterestRatesDoc is the static interest-rates resource payload.
// Rates are annual percentages.
type InterestRatesDoc struct {
	SavingsAPY   json.Number `json:"savings_apy"`
	CheckingAPY  json.Number `json:"checking_apy"`
	CD12MonthAPY json.Number `json:"cd_12_month_apy"`
	Mortgage30Yr json.Number `json:"mortgage_30_year"`
	AutoLoan     json.Number `json:"auto_loan"`
	AsOf         string      `json:"as_of"`
}

// AccountTypes returns the catalogue of account types the bank offers.
func (s *Store) AccountTypes() *AccountTypesDoc {
	return &AccountTypesDoc{
		AccountTypes: []string{TypeChecking, TypeSavings, TypeMoneyMarket, TypeCD},
		Description:  "Available account types at our bank",
	}
}

// InterestRates returns the published rate sheet stamped with the
// current date.
func (s *Store) InterestRates() *InterestRatesDoc {
	return &InterestRatesDoc{
		SavingsAPY:   "4.5",
		CheckingAPY:  "0.1",
		CD12MonthAPY: "5.0",
		Mortgage30Yr: "6.75",
		AutoLoan:     "7.5",
		AsOf:         s.now().Format("2006-01-02"),
	}
}
