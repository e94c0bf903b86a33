package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/centavohq/centavo_backend/internal/core/domain"
)

// FormatDisplayAmount renders an amount as a localized currency string,
// e.g. "$1,234.50" for USD. Codes unknown to the ISO table (crypto tickers,
// parallel-market pseudo codes) fall back to plain decimal formatting with
// the currency's own precision.
func FormatDisplayAmount(amount decimal.Decimal, currency domain.Currency) string {
	if c := money.GetCurrency(currency.CurrencyCode); c != nil && !currency.IsCrypto() {
		minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
		return money.New(minor, currency.CurrencyCode).Display()
	}
	return FormatWithPrecision(amount, currency.Precision) + " " + currency.CurrencyCode
}

// FormatWithCurrencyPrecision formats an amount with the correct precision
// for a given currency.
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.Precision)).String()
}

// FormatWithPrecision formats an amount with the given precision.
// This is a convenience function when you only have the precision value.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
