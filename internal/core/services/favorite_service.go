package services

import (
	"context"
	"fmt"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portsrepo "github.com/centavohq/centavo_backend/internal/core/ports/repositories"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// favoriteService manages user-pinned exchange rates.
type favoriteService struct {
	favoriteRepo portsrepo.FavoriteRepositoryFacade
	rateRepo     portsrepo.ExchangeRateReader
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(
	favoriteRepo portsrepo.FavoriteRepositoryFacade,
	rateRepo portsrepo.ExchangeRateReader,
) portssvc.FavoriteSvcFacade {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		rateRepo:     rateRepo,
	}
}

// ListFavorites returns the user's favorites in display order.
func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithRate, error) {
	favorites, err := s.favoriteRepo.ListFavoritesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// CreateFavorite pins a rate row at the end of the user's list.
func (s *favoriteService) CreateFavorite(ctx context.Context, userID string, req dto.CreateFavoriteRequest) (*domain.RateFavorite, error) {
	if _, err := s.rateRepo.FindRateByID(ctx, req.ExchangeRateID); err != nil {
		return nil, fmt.Errorf("failed to validate favorite rate: %w", err)
	}

	now := time.Now()
	favorite := domain.RateFavorite{
		FavoriteID:     uuid.NewString(),
		UserID:         userID,
		ExchangeRateID: req.ExchangeRateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.favoriteRepo.SaveFavorite(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}
	return &favorite, nil
}

// DeleteFavorite removes a favorite owned by the user.
func (s *favoriteService) DeleteFavorite(ctx context.Context, userID, favoriteID string) error {
	if err := s.favoriteRepo.DeleteFavorite(ctx, userID, favoriteID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// ReorderFavorites applies a new display order after checking the request
// names the user's favorites exactly once each. The repository performs the
// actual write with its two-phase protocol so the (user, order) unique
// constraint never collides mid-batch.
func (s *favoriteService) ReorderFavorites(ctx context.Context, userID string, req dto.ReorderFavoritesRequest) error {
	existing, err := s.favoriteRepo.ListFavoritesForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load favorites for reorder: %w", err)
	}

	if len(req.FavoriteIDs) != len(existing) {
		return fmt.Errorf("%w: reorder must include all %d favorites", apperrors.ErrValidation, len(existing))
	}
	existingIDs := lo.Map(existing, func(f domain.FavoriteWithRate, _ int) string { return f.FavoriteID })
	if len(lo.Uniq(req.FavoriteIDs)) != len(req.FavoriteIDs) {
		return fmt.Errorf("%w: reorder contains duplicate favorite IDs", apperrors.ErrValidation)
	}
	if missing, _ := lo.Difference(req.FavoriteIDs, existingIDs); len(missing) > 0 {
		return fmt.Errorf("%w: unknown favorite IDs in reorder", apperrors.ErrValidation)
	}

	if err := s.favoriteRepo.ReorderFavorites(ctx, userID, req.FavoriteIDs); err != nil {
		return fmt.Errorf("failed to reorder favorites: %w", err)
	}
	return nil
}
