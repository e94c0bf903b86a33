package dto

import (
	"time"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for a manual rate entry.
type CreateExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	RateType     string          `json:"rateType" binding:"omitempty,ratetype"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	RateDate     time.Time       `json:"rateDate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	RateDate       time.Time       `json:"rateDate"`
	CurrencyCode   string          `json:"currencyCode"`
	RateType       string          `json:"rateType"`
	Rate           decimal.Decimal `json:"rate"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		RateDate:       rate.RateDate,
		CurrencyCode:   rate.CurrencyCode,
		RateType:       rate.RateType,
		Rate:           rate.Rate,
		CreatedAt:      rate.CreatedAt,
		LastUpdatedAt:  rate.LastUpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
