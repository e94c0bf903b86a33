package domain

import "github.com/shopspring/decimal"

// CurrencyBalance is a per-currency wealth total in native units, before
// any USD pivoting.
type CurrencyBalance struct {
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// CategorySpend is a per-category, per-currency expense total in native
// units for a reporting period.
type CategorySpend struct {
	Category     string          `json:"category"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
}
