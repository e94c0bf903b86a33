package dto

import "github.com/shopspring/decimal"

// WealthLine is one currency's contribution to the wealth summary.
type WealthLine struct {
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceInUSD decimal.Decimal `json:"balanceInUSD"`
	Display      string          `json:"display"`
}

// WealthSummaryResponse aggregates latest balances in the USD pivot and the
// user's home currency. Currencies with no resolvable rate contribute zero
// and are listed in MissingRates so callers can surface data quality gaps.
type WealthSummaryResponse struct {
	Lines        []WealthLine    `json:"lines"`
	TotalInUSD   decimal.Decimal `json:"totalInUSD"`
	HomeCurrency string          `json:"homeCurrency"`
	TotalInHome  decimal.Decimal `json:"totalInHome"`
	DisplayTotal string          `json:"displayTotal"`
	MissingRates []string        `json:"missingRates,omitempty"`
}

// SpendingLine is one (category, currency) expense total.
type SpendingLine struct {
	Category     string          `json:"category"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	AmountInUSD  decimal.Decimal `json:"amountInUSD"`
}

// SpendingSummaryResponse aggregates period expenses in the USD pivot.
type SpendingSummaryResponse struct {
	Lines        []SpendingLine  `json:"lines"`
	TotalInUSD   decimal.Decimal `json:"totalInUSD"`
	HomeCurrency string          `json:"homeCurrency"`
	TotalInHome  decimal.Decimal `json:"totalInHome"`
	MissingRates []string        `json:"missingRates,omitempty"`
}
