package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/centavohq/centavo_backend/internal/apperrors"
	"github.com/centavohq/centavo_backend/internal/core/domain"
	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/dto"
	"github.com/centavohq/centavo_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultRateSegment is the path segment that asks for the resolved default
// rate instead of a concrete rate type. The word is reserved at the domain
// level, so no stored rate type can collide with it.
const defaultRateSegment = domain.RateTypeDefault

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	syncService         portssvc.RateSyncSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, ss portssvc.RateSyncSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		syncService:         ss,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, syncService portssvc.RateSyncSvc) {
	h := newExchangeRateHandler(exchangeRateService, syncService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.POST("/sync", h.triggerSync)
		exchangeRates.GET("/:currency", h.listRatesForCurrency)
		exchangeRates.GET("/:currency/:rateType", h.getRateByType)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a manually entered exchange rate for a currency and rate type
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("currency_code", req.CurrencyCode),
		slog.String("rate_type", req.RateType),
		slog.Any("rate", req.Rate),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Unknown currency for exchange rate", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listRatesForCurrency godoc
// @Summary List rates for a currency
// @Description Retrieves every rate type quoted for the currency on its most recent rate date
// @Tags exchange rates
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rates"
// @Security BearerAuth
// @Router /exchange-rates/{currency} [get]
func (h *exchangeRateHandler) listRatesForCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("currency"))

	if !currencyCodePattern.MatchString(currencyCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency code"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))

	rates, err := h.exchangeRateService.ListRatesForCurrency(c.Request.Context(), currencyCode)
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rates"})
		return
	}

	logger.Info("Exchange rates listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getRateByType godoc
// @Summary Get a rate by type
// @Description Retrieves the latest rate for a currency and rate type. Pass "default" as the type to get the resolved default selection (favorites first, then blue, then official, then first available).
// @Tags exchange rates
// @Produce  json
// @Param   currency path string true "Currency Code"
// @Param   rateType path string true "Rate type, or 'default'"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{currency}/{rateType} [get]
func (h *exchangeRateHandler) getRateByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("currency"))
	rateType := c.Param("rateType")

	if !currencyCodePattern.MatchString(currencyCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency code"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode), slog.String("rate_type", rateType))

	var (
		rate *domain.ExchangeRate
		err  error
	)
	if rateType == defaultRateSegment {
		// The default selection depends on the caller's favorites; an empty
		// user ID falls through to the global cascade.
		userID, _ := middleware.GetUserIDFromContext(c)
		rate, err = h.exchangeRateService.GetDefaultRate(c.Request.Context(), currencyCode, userID)
	} else {
		rate, err = h.exchangeRateService.GetRateByType(c.Request.Context(), currencyCode, rateType)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error getting exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	logger.Info("Exchange rate retrieved successfully")
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// triggerSync godoc
// @Summary Trigger a rate sync
// @Description Fetches the latest snapshot from the rate feed and upserts today's rates. Non-admin callers are subject to a trigger quota and a cooldown between syncs.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.SyncResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Cooldown active or trigger quota exceeded"
// @Failure 502 {object} map[string]string "Feed payload rejected"
// @Failure 504 {object} map[string]string "Feed fetch timed out"
// @Security BearerAuth
// @Router /exchange-rates/sync [post]
func (h *exchangeRateHandler) triggerSync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	opts := dto.SyncOptions{
		Admin:     middleware.IsAdminFromContext(c),
		ClientKey: c.ClientIP(),
	}
	logger.Info("Received request to sync exchange rates", slog.Bool("admin", opts.Admin))

	result, err := h.syncService.SyncExchangeRates(c.Request.Context(), opts)
	if err != nil {
		msg := "Sync failed: " + err.Error()
		switch {
		case errors.Is(err, apperrors.ErrSyncCooldown), errors.Is(err, apperrors.ErrRateLimited):
			logger.Warn("Sync trigger rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		case errors.Is(err, apperrors.ErrSyncTimeout):
			logger.Error("Sync timed out", slog.String("error", err.Error()))
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": msg})
		case errors.Is(err, apperrors.ErrEmptyPayload), errors.Is(err, apperrors.ErrPayloadTooLarge):
			logger.Error("Sync payload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": msg})
		default:
			logger.Error("Sync failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		}
		return
	}

	logger.Info("Sync completed",
		slog.Int("synced", result.SyncedCount),
		slog.Int("skipped", result.SkippedCount),
	)
	c.JSON(http.StatusOK, result)
}
