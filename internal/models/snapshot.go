package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetSnapshot stores an asset account balance for a day, with the USD
// value derived at write time.
type AssetSnapshot struct {
	SnapshotID   string          `json:"snapshotID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"`
	UserID       string          `json:"userID"`
	CurrencyCode string          `json:"currencyCode"`
	SnapshotDate time.Time       `json:"snapshotDate"`
	Balance      decimal.Decimal `json:"balance"`
	BalanceInUSD decimal.Decimal `json:"balanceInUSD"`
	AuditFields
}
