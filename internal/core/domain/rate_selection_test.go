package domain_test

import (
	"testing"

	"github.com/centavohq/centavo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateSelection_ModesAreMutuallyExclusive(t *testing.T) {
	stored := domain.ExchangeRate{
		ExchangeRateID: "rate-1",
		CurrencyCode:   "ARS",
		RateType:       domain.RateTypeBlue,
		Rate:           decimal.NewFromInt(1415),
	}

	var sel domain.RateSelection
	assert.True(t, sel.ActiveRate().IsZero(), "nothing selected yet")

	sel.SelectStored(stored)
	assert.False(t, sel.IsCustom)
	assert.True(t, sel.ActiveRate().Equal(decimal.NewFromInt(1415)))

	sel.SelectCustom(decimal.NewFromInt(1400))
	assert.True(t, sel.IsCustom)
	assert.Nil(t, sel.SelectedRate, "custom entry clears the stored selection")
	assert.True(t, sel.ActiveRate().Equal(decimal.NewFromInt(1400)))

	sel.SelectStored(stored)
	assert.False(t, sel.IsCustom)
	assert.True(t, sel.CustomRate.IsZero(), "stored selection clears the custom value")
	assert.True(t, sel.ActiveRate().Equal(decimal.NewFromInt(1415)))
}
