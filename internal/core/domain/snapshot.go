package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetSnapshot is an asset account's balance on a given day, in the
// account's native currency, together with the USD value derived at write
// time. BalanceInUSD is expected to equal Balance converted under the
// fiat/crypto storage convention for the rate in effect on SnapshotDate;
// the repair service exists because a population of historical rows
// violated that.
type AssetSnapshot struct {
	SnapshotID   string          `json:"snapshotID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"`
	UserID       string          `json:"userID"`
	CurrencyCode string          `json:"currencyCode"`
	SnapshotDate time.Time       `json:"snapshotDate"` // UTC midnight
	Balance      decimal.Decimal `json:"balance"`
	BalanceInUSD decimal.Decimal `json:"balanceInUSD"`
	AuditFields
}
