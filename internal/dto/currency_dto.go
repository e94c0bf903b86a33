package dto

import "github.com/centavohq/centavo_backend/internal/core/domain"

// CreateCurrencyRequest defines the structure for creating a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,min=2,max=10,uppercase"`
	Symbol       string `json:"symbol" binding:"required,max=8"`
	Name         string `json:"name" binding:"required,max=64"`
	Kind         string `json:"kind" binding:"required,oneof=FIAT CRYPTO"`
	Precision    int    `json:"precision" binding:"min=0,max=18"`
}

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Kind:         string(c.Kind),
		Precision:    c.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
