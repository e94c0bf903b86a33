package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known rate types. The feed may deliver arbitrary additional tags
// (e.g. regional parallel-market rates); official and blue have special
// meaning in default-rate resolution.
const (
	RateTypeOfficial = "official"
	RateTypeBlue     = "blue"

	// RateTypeDefault is the path segment that asks for the resolved
	// default rate. It is reserved and never stored, so a stored type can
	// never shadow the resolution route.
	RateTypeDefault = "default"
)

// ExchangeRate is one quoted rate for a currency on a calendar day.
//
// Storage convention, never to be changed silently: for fiat currencies Rate
// is units of currency per 1 USD; for crypto currencies Rate is USD per 1
// unit. All conversion code must branch on the currency classifier, never on
// the shape of the code itself.
//
// The triple (RateDate, CurrencyCode, RateType) is unique. Rows are written
// by the sync job (upsert) or by a manual admin entry, and are never mutated
// by conversion reads.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	RateDate       time.Time       `json:"rateDate"`       // UTC midnight
	CurrencyCode   string          `json:"currencyCode"`   // uppercase ISO code or crypto ticker
	RateType       string          `json:"rateType"`       // lowercase tag, "official" by default
	Rate           decimal.Decimal `json:"rate"`           // positive
	AuditFields
}

// NormalizeRateDate truncates t to UTC midnight, the resolution rates are
// stored at.
func NormalizeRateDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
