package services

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/dto"
)

// FavoriteSvcFacade manages a user's pinned exchange rates.
type FavoriteSvcFacade interface {
	// ListFavorites returns the user's favorites in display order.
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithRate, error)

	// CreateFavorite pins a rate row at the end of the user's list.
	CreateFavorite(ctx context.Context, userID string, req dto.CreateFavoriteRequest) (*domain.RateFavorite, error)

	// DeleteFavorite removes a favorite owned by the user.
	DeleteFavorite(ctx context.Context, userID, favoriteID string) error

	// ReorderFavorites applies a new display order. The ID set must match
	// the user's favorites exactly.
	ReorderFavorites(ctx context.Context, userID string, req dto.ReorderFavoritesRequest) error
}
