package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// favoriteHandler handles HTTP requests related to pinned exchange rates.
type favoriteHandler struct {
	favoriteService portssvc.FavoriteSvcFacade
}

// newFavoriteHandler creates a new favoriteHandler.
func newFavoriteHandler(fs portssvc.FavoriteSvcFacade) *favoriteHandler {
	return &favoriteHandler{
		favoriteService: fs,
	}
}

// registerFavoriteRoutes registers routes related to rate favorites.
func registerFavoriteRoutes(rg *gin.RouterGroup, favoriteService portssvc.FavoriteSvcFacade) {
	h := newFavoriteHandler(favoriteService)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.listFavorites)
		favorites.POST("", h.createFavorite)
		favorites.DELETE("/:favoriteID", h.deleteFavorite)
		favorites.PUT("/reorder", h.reorderFavorites)
	}
}

// listFavorites godoc
// @Summary List favorite rates
// @Description Retrieves the caller's pinned exchange rates in display order
// @Tags favorites
// @Produce  json
// @Success 200 {array} dto.FavoriteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list favorites"
// @Security BearerAuth
// @Router /favorites [get]
func (h *favoriteHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list favorites from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFavoriteResponse(favorites))
}

// createFavorite godoc
// @Summary Pin an exchange rate
// @Description Pins a rate row at the end of the caller's favorites list
// @Tags favorites
// @Accept  json
// @Produce  json
// @Param   favorite body dto.CreateFavoriteRequest true "Favorite details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 409 {object} map[string]string "Rate already pinned"
// @Security BearerAuth
// @Router /favorites [post]
func (h *favoriteHandler) createFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFavorite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("exchange_rate_id", req.ExchangeRateID))
	logger.Info("Received request to create favorite")

	favorite, err := h.favoriteService.CreateFavorite(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate to pin not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Rate already pinned")
			c.JSON(http.StatusConflict, gin.H{"error": "Rate is already pinned"})
		} else {
			logger.Error("Failed to create favorite in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create favorite"})
		}
		return
	}

	logger.Info("Favorite created successfully", slog.String("favorite_id", favorite.FavoriteID))
	c.JSON(http.StatusCreated, gin.H{"favoriteID": favorite.FavoriteID})
}

// deleteFavorite godoc
// @Summary Unpin an exchange rate
// @Description Removes a favorite owned by the caller
// @Tags favorites
// @Produce  json
// @Param   favoriteID path string true "Favorite ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Security BearerAuth
// @Router /favorites/{favoriteID} [delete]
func (h *favoriteHandler) deleteFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	favoriteID := c.Param("favoriteID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("favorite_id", favoriteID))

	if err := h.favoriteService.DeleteFavorite(c.Request.Context(), userID, favoriteID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Favorite not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		} else {
			logger.Error("Failed to delete favorite in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete favorite"})
		}
		return
	}

	logger.Info("Favorite deleted successfully")
	c.Status(http.StatusNoContent)
}

// reorderFavorites godoc
// @Summary Reorder favorite rates
// @Description Applies a new display order. The submitted ID set must match the caller's favorites exactly.
// @Tags favorites
// @Accept  json
// @Produce  json
// @Param   order body dto.ReorderFavoritesRequest true "Favorite IDs in their new order"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input or ID set mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Security BearerAuth
// @Router /favorites/reorder [put]
func (h *favoriteHandler) reorderFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReorderFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReorderFavorites", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to reorder favorites", slog.Int("count", len(req.FavoriteIDs)))

	if err := h.favoriteService.ReorderFavorites(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error reordering favorites", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Favorite not found during reorder")
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		} else {
			logger.Error("Failed to reorder favorites in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder favorites"})
		}
		return
	}

	logger.Info("Favorites reordered successfully")
	c.Status(http.StatusNoContent)
}
