package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores one quoted rate for a currency on a calendar day.
// Fiat rows hold units-per-USD, crypto rows hold USD-per-unit; the currency
// table's kind column is the only authority on which convention applies.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	RateDate       time.Time       `json:"rateDate"`
	CurrencyCode   string          `json:"currencyCode"`
	RateType       string          `json:"rateType"`
	Rate           decimal.Decimal `json:"rate"`
	AuditFields
}
