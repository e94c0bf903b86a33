package mapping

import (
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		RateDate:       d.RateDate,
		CurrencyCode:   d.CurrencyCode,
		RateType:       d.RateType,
		Rate:           d.Rate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		RateDate:       m.RateDate,
		CurrencyCode:   m.CurrencyCode,
		RateType:       m.RateType,
		Rate:           m.Rate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
