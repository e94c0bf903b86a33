// Package conversion holds the pure currency conversion engine. All money
// aggregation in the application pivots through USD using these functions.
//
// The dual storage convention is load-bearing: fiat rates are stored as
// units of currency per 1 USD, crypto rates as USD per 1 unit. Direction is
// decided exclusively by the Classifier, never by the shape of the code.
//
// Every guard here returns a safe zero instead of an error because these
// functions run synchronously inside dashboard aggregation and import
// preview paths that must never fail a render. Callers needing strict
// validation must check for zero at their own boundary.
package conversion

import "github.com/shopspring/decimal"

// USDPrecision is the scale USD pivot amounts are rounded to, using
// round-half-away-from-zero.
const USDPrecision = 2

// CurrencyUSD is the pivot currency; conversions to and from it are the
// identity regardless of any supplied rate.
const CurrencyUSD = "USD"

// Classifier reports which storage convention applies to a currency code.
type Classifier interface {
	IsCrypto(currencyCode string) bool
}

// StaticClassifier is a fixed-set Classifier keyed by uppercase ticker.
type StaticClassifier map[string]struct{}

// NewStaticClassifier builds a StaticClassifier from crypto ticker codes.
func NewStaticClassifier(codes ...string) StaticClassifier {
	c := make(StaticClassifier, len(codes))
	for _, code := range codes {
		c[code] = struct{}{}
	}
	return c
}

// IsCrypto implements Classifier.
func (c StaticClassifier) IsCrypto(currencyCode string) bool {
	_, ok := c[currencyCode]
	return ok
}

// DefaultCryptoTickers are the tickers recognized before the currency table
// has been consulted. The database-backed classifier supersedes this set.
var DefaultCryptoTickers = []string{"BTC", "ETH", "USDT", "USDC", "SOL", "XLM", "DAI"}

// Engine converts amounts between currencies and the USD pivot.
type Engine struct {
	classifier Classifier
}

// NewEngine creates a conversion engine over the given classifier.
func NewEngine(classifier Classifier) Engine {
	return Engine{classifier: classifier}
}

// ToUSD converts an amount in the given currency to USD.
// Zero amounts and USD pass through unchanged; a missing or non-positive
// rate degrades to zero. Crypto multiplies, fiat divides.
func (e Engine) ToUSD(amount decimal.Decimal, currencyCode string, rate decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	if currencyCode == CurrencyUSD {
		return amount
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if e.classifier.IsCrypto(currencyCode) {
		return amount.Mul(rate).Round(USDPrecision)
	}
	return amount.Div(rate).Round(USDPrecision)
}

// FromUSD converts a USD amount into the given currency, mirroring ToUSD:
// crypto divides, fiat multiplies. Same zero and guard rules.
func (e Engine) FromUSD(usdAmount decimal.Decimal, currencyCode string, rate decimal.Decimal) decimal.Decimal {
	if usdAmount.IsZero() {
		return decimal.Zero
	}
	if currencyCode == CurrencyUSD {
		return usdAmount
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if e.classifier.IsCrypto(currencyCode) {
		return usdAmount.Div(rate).Round(USDPrecision)
	}
	return usdAmount.Mul(rate).Round(USDPrecision)
}

// Convert converts an amount between two currencies by pivoting through
// USD. Identity when both codes match; a missing rate on either leg
// degrades the result to zero.
func (e Engine) Convert(amount decimal.Decimal, fromCurrency string, fromRate decimal.Decimal, toCurrency string, toRate decimal.Decimal) decimal.Decimal {
	if fromCurrency == toCurrency {
		return amount
	}
	usd := e.ToUSD(amount, fromCurrency, fromRate)
	return e.FromUSD(usd, toCurrency, toRate)
}

// DisplayMode selects which direction a displayed rate is read in.
type DisplayMode string

const (
	// ForeignToUSD displays how many USD one unit of the currency buys.
	ForeignToUSD DisplayMode = "foreign-to-usd"
	// USDToForeign displays how many units of the currency one USD buys.
	USDToForeign DisplayMode = "usd-to-foreign"
)

// DisplayRate returns the rate as read in the given display mode. Crypto
// rates are already USD-denominated so both modes return the raw rate; for
// fiat, foreign-to-usd is the reciprocal of the stored rate. Missing or
// non-positive rates display as zero.
func (e Engine) DisplayRate(rate decimal.Decimal, currencyCode string, mode DisplayMode) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if e.classifier.IsCrypto(currencyCode) {
		return rate
	}
	if mode == ForeignToUSD {
		return decimal.NewFromInt(1).Div(rate)
	}
	return rate
}

// EffectiveRate applies the UI-facing direction toggle to a raw rate value.
// This is unrelated to the fiat/crypto convention; it only flips how a
// number is read on screen.
func EffectiveRate(rate decimal.Decimal, invert bool) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if invert {
		return decimal.NewFromInt(1).Div(rate)
	}
	return rate
}
