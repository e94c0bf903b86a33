package mapping

import (
	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/centavohq/centavo_backend/internal/models"
)

// ToModelAssetSnapshot converts a domain AssetSnapshot to a model AssetSnapshot
func ToModelAssetSnapshot(d domain.AssetSnapshot) models.AssetSnapshot {
	return models.AssetSnapshot{
		SnapshotID:   d.SnapshotID,
		AccountID:    d.AccountID,
		UserID:       d.UserID,
		CurrencyCode: d.CurrencyCode,
		SnapshotDate: d.SnapshotDate,
		Balance:      d.Balance,
		BalanceInUSD: d.BalanceInUSD,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetSnapshot converts a model AssetSnapshot to a domain AssetSnapshot
func ToDomainAssetSnapshot(m models.AssetSnapshot) domain.AssetSnapshot {
	return domain.AssetSnapshot{
		SnapshotID:   m.SnapshotID,
		AccountID:    m.AccountID,
		UserID:       m.UserID,
		CurrencyCode: m.CurrencyCode,
		SnapshotDate: m.SnapshotDate,
		Balance:      m.Balance,
		BalanceInUSD: m.BalanceInUSD,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
