package repositories

import (
	"context"

	"github.com/centavohq/centavo_backend/internal/core/domain"
)

// FavoriteReader defines read operations for rate favorites
type FavoriteReader interface {
	// ListFavoritesForUser returns the user's favorites joined with their
	// rate rows, ordered by display order ascending.
	ListFavoritesForUser(ctx context.Context, userID string) ([]domain.FavoriteWithRate, error)

	// FindFavoriteByID retrieves a single favorite.
	FindFavoriteByID(ctx context.Context, favoriteID string) (*domain.RateFavorite, error)
}

// FavoriteWriter defines write operations for rate favorites
type FavoriteWriter interface {
	// SaveFavorite persists a new favorite at the end of the user's list.
	SaveFavorite(ctx context.Context, favorite domain.RateFavorite) error

	// DeleteFavorite removes a favorite owned by the user.
	DeleteFavorite(ctx context.Context, userID, favoriteID string) error

	// ReorderFavorites rewrites display orders so favorites appear in the
	// given sequence. Implementations must not transiently violate the
	// (user_id, display_order) unique constraint.
	ReorderFavorites(ctx context.Context, userID string, orderedFavoriteIDs []string) error
}

// FavoriteRepositoryFacade combines all favorite-related repository interfaces
type FavoriteRepositoryFacade interface {
	FavoriteReader
	FavoriteWriter
}
