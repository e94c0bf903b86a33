package domain

// CurrencyKind distinguishes the two rate storage conventions.
type CurrencyKind string

const (
	// Fiat currencies store their rate as units of currency per 1 USD.
	Fiat CurrencyKind = "FIAT"
	// Crypto currencies store their rate as USD per 1 unit.
	Crypto CurrencyKind = "CRYPTO"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string       `json:"currencyCode"` // Primary Key (e.g., "USD", "BTC")
	Symbol       string       `json:"symbol"`       // e.g., "$"
	Name         string       `json:"name"`         // e.g., "US Dollar"
	Kind         CurrencyKind `json:"kind"`
	Precision    int          `json:"precision"` // display decimal places
	AuditFields
}

// IsCrypto reports whether the currency follows the USD-per-unit convention.
func (c Currency) IsCrypto() bool {
	return c.Kind == Crypto
}
