package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/centavohq/centavo_backend/internal/core/ports/services"
	"github.com/centavohq/centavo_backend/internal/middleware"
	"github.com/centavohq/centavo_backend/internal/utils/conversion"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/wealth", h.getWealthSummary)
		reports.GET("/spending", h.getSpendingSummary)
	}
}

// homeCurrency reads the optional "home" query parameter, defaulting to USD.
func homeCurrency(c *gin.Context) (string, bool) {
	home := strings.ToUpper(c.DefaultQuery("home", conversion.CurrencyUSD))
	if !currencyCodePattern.MatchString(home) {
		return "", false
	}
	return home, true
}

// getWealthSummary godoc
// @Summary Wealth summary
// @Description Aggregates the caller's latest asset snapshot balances into USD and the given home currency. Currencies with no resolvable rate contribute zero and are listed in missingRates.
// @Tags reports
// @Produce  json
// @Param   home query string false "Home currency code (default USD)"
// @Success 200 {object} dto.WealthSummaryResponse
// @Failure 400 {object} map[string]string "Invalid home currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build wealth summary"
// @Security BearerAuth
// @Router /reports/wealth [get]
func (h *reportingHandler) getWealthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	home, ok := homeCurrency(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home currency code"})
		return
	}

	summary, err := h.reportingService.GetWealthSummary(c.Request.Context(), userID, home)
	if err != nil {
		logger.Error("Failed to build wealth summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build wealth summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getSpendingSummary godoc
// @Summary Spending summary
// @Description Aggregates the caller's expenses for the period into USD and the given home currency. The period defaults to the current month.
// @Tags reports
// @Produce  json
// @Param   from query string false "Period start (YYYY-MM-DD, inclusive)"
// @Param   to   query string false "Period end (YYYY-MM-DD, exclusive)"
// @Param   home query string false "Home currency code (default USD)"
// @Success 200 {object} dto.SpendingSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period or home currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build spending summary"
// @Security BearerAuth
// @Router /reports/spending [get]
func (h *reportingHandler) getSpendingSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	home, ok := homeCurrency(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home currency code"})
		return
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(reportDateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(reportDateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = parsed
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must be after 'from'"})
		return
	}

	summary, err := h.reportingService.GetSpendingSummary(c.Request.Context(), userID, from, to, home)
	if err != nil {
		logger.Error("Failed to build spending summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spending summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
