package domain

// RateFavorite pins a specific exchange rate row for a user. Favorites are
// ranked by DisplayOrder ascending and bias default-rate resolution: the
// first favorite whose currency matches wins, provided a rate of the same
// type exists for the day.
//
// Unique per (UserID, ExchangeRateID) and per (UserID, DisplayOrder); see
// the repository reorder protocol for how the second constraint is kept
// from colliding mid-batch.
type RateFavorite struct {
	FavoriteID     string `json:"favoriteID"` // Primary Key (UUID)
	UserID         string `json:"userID"`
	ExchangeRateID string `json:"exchangeRateID"`
	DisplayOrder   int    `json:"displayOrder"`
	AuditFields
}

// FavoriteWithRate joins a favorite to the rate row it pins, as returned by
// ordered list queries.
type FavoriteWithRate struct {
	RateFavorite
	Rate ExchangeRate `json:"rate"`
}
