package domain

import "github.com/shopspring/decimal"

// RateSelection tracks which rate a caller currently has active for an
// amount entry form: either a stored rate row or a user-typed custom value.
// The two modes are mutually exclusive; entering one clears the other. A
// custom value is never picked automatically, only by explicit user action.
type RateSelection struct {
	SelectedRate *ExchangeRate   `json:"selectedRate,omitempty"`
	CustomRate   decimal.Decimal `json:"customRate"`
	IsCustom     bool            `json:"isCustom"`
}

// SelectStored activates a stored rate and leaves custom mode.
func (s *RateSelection) SelectStored(rate ExchangeRate) {
	s.SelectedRate = &rate
	s.IsCustom = false
	s.CustomRate = decimal.Zero
}

// SelectCustom activates a user-typed rate and clears any stored selection.
func (s *RateSelection) SelectCustom(rate decimal.Decimal) {
	s.IsCustom = true
	s.CustomRate = rate
	s.SelectedRate = nil
}

// ActiveRate returns the rate value currently in effect, or zero when
// nothing is selected.
func (s *RateSelection) ActiveRate() decimal.Decimal {
	if s.IsCustom {
		return s.CustomRate
	}
	if s.SelectedRate != nil {
		return s.SelectedRate.Rate
	}
	return decimal.Zero
}
