package models

// RateFavorite associates a user with a pinned exchange rate row.
type RateFavorite struct {
	FavoriteID     string `json:"favoriteID"` // Primary Key (UUID)
	UserID         string `json:"userID"`
	ExchangeRateID string `json:"exchangeRateID"`
	DisplayOrder   int    `json:"displayOrder"`
	AuditFields
}
