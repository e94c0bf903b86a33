package dto

import (
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFavoriteRequest pins an exchange rate row for the caller.
type CreateFavoriteRequest struct {
	ExchangeRateID string `json:"exchangeRateID" binding:"required,uuid"`
}

// ReorderFavoritesRequest carries the caller's favorites in their new
// display order. The set must match the caller's favorites exactly.
type ReorderFavoritesRequest struct {
	FavoriteIDs []string `json:"favoriteIDs" binding:"required,min=1,dive,uuid"`
}

// FavoriteResponse is a favorite joined with its pinned rate.
type FavoriteResponse struct {
	FavoriteID     string          `json:"favoriteID"`
	ExchangeRateID string          `json:"exchangeRateID"`
	DisplayOrder   int             `json:"displayOrder"`
	CurrencyCode   string          `json:"currencyCode"`
	RateType       string          `json:"rateType"`
	Rate           decimal.Decimal `json:"rate"`
}

// ToFavoriteResponse converts a domain.FavoriteWithRate to a FavoriteResponse DTO
func ToFavoriteResponse(f domain.FavoriteWithRate) FavoriteResponse {
	return FavoriteResponse{
		FavoriteID:     f.FavoriteID,
		ExchangeRateID: f.ExchangeRateID,
		DisplayOrder:   f.DisplayOrder,
		CurrencyCode:   f.Rate.CurrencyCode,
		RateType:       f.Rate.RateType,
		Rate:           f.Rate.Rate,
	}
}

// ToListFavoriteResponse converts a slice of domain.FavoriteWithRate to response DTOs.
func ToListFavoriteResponse(favorites []domain.FavoriteWithRate) []FavoriteResponse {
	responses := make([]FavoriteResponse, len(favorites))
	for i, f := range favorites {
		responses[i] = ToFavoriteResponse(f)
	}
	return responses
}
