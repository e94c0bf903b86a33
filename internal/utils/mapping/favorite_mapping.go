package mapping

import (
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
)

// ToModelRateFavorite converts a domain RateFavorite to a model RateFavorite
func ToModelRateFavorite(d domain.RateFavorite) models.RateFavorite {
	return models.RateFavorite{
		FavoriteID:     d.FavoriteID,
		UserID:         d.UserID,
		ExchangeRateID: d.ExchangeRateID,
		DisplayOrder:   d.DisplayOrder,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRateFavorite converts a model RateFavorite to a domain RateFavorite
func ToDomainRateFavorite(m models.RateFavorite) domain.RateFavorite {
	return domain.RateFavorite{
		FavoriteID:     m.FavoriteID,
		UserID:         m.UserID,
		ExchangeRateID: m.ExchangeRateID,
		DisplayOrder:   m.DisplayOrder,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
