package conversion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() Engine {
	return NewEngine(NewStaticClassifier(DefaultCryptoTickers...))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestToUSD(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name     string
		amount   string
		currency string
		rate     string
		want     string
	}{
		{"fiat divides", "1415", "ARS", "1415", "1"},
		{"crypto multiplies", "1", "BTC", "50000", "50000"},
		{"usd passes through", "123.456", "USD", "0.5", "123.456"},
		{"zero amount", "0", "EUR", "0.9", "0"},
		{"zero rate degrades", "100", "EUR", "0", "0"},
		{"negative rate degrades", "100", "EUR", "-1", "0"},
		{"rounds half away from zero", "1000", "ARS", "1414.5", "0.71"},
		{"fractional crypto", "0.015", "ETH", "2500", "37.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ToUSD(d(tt.amount), tt.currency, d(tt.rate))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestFromUSD(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name     string
		usd      string
		currency string
		rate     string
		want     string
	}{
		{"fiat multiplies", "1", "ARS", "1415", "1415"},
		{"crypto divides", "50000", "BTC", "50000", "1"},
		{"usd passes through", "77.7", "USD", "3", "77.7"},
		{"zero amount", "0", "EUR", "0.9", "0"},
		{"zero rate degrades", "100", "EUR", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FromUSD(d(tt.usd), tt.currency, d(tt.rate))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

// Converting to USD and back must land within a cent of the original for
// any positive fiat rate.
func TestRoundTripWithinEpsilon(t *testing.T) {
	e := testEngine()
	epsilon := d("0.01")
	rate := d("0.92")

	for _, amount := range []string{"100", "0.07", "12345.67", "1.015"} {
		usd := e.ToUSD(d(amount), "EUR", rate)
		back := e.FromUSD(usd, "EUR", rate)
		diff := back.Sub(d(amount)).Abs()
		assert.True(t, diff.LessThanOrEqual(epsilon), "amount %s round-tripped to %s", amount, back)
	}
}

func TestConvert(t *testing.T) {
	e := testEngine()

	t.Run("identity on same currency ignores rates", func(t *testing.T) {
		got := e.Convert(d("42.42"), "USD", d("999"), "USD", d("0"))
		assert.True(t, d("42.42").Equal(got))
	})

	t.Run("pivots through usd", func(t *testing.T) {
		// 1415 ARS -> 1 USD -> 0.92 EUR
		got := e.Convert(d("1415"), "ARS", d("1415"), "EUR", d("0.92"))
		assert.True(t, d("0.92").Equal(got))
	})

	t.Run("fiat to crypto", func(t *testing.T) {
		// 50000 USD worth of ARS into BTC at 50000 USD/BTC
		got := e.Convert(d("70750000"), "ARS", d("1415"), "BTC", d("50000"))
		assert.True(t, d("1").Equal(got))
	})

	t.Run("missing rate on either leg yields zero", func(t *testing.T) {
		assert.True(t, e.Convert(d("10"), "ARS", decimal.Zero, "EUR", d("0.92")).IsZero())
		assert.True(t, e.Convert(d("10"), "ARS", d("1415"), "EUR", decimal.Zero).IsZero())
	})
}

func TestDisplayRate(t *testing.T) {
	e := testEngine()

	t.Run("crypto is the same in both modes", func(t *testing.T) {
		rate := d("50000")
		assert.True(t, rate.Equal(e.DisplayRate(rate, "BTC", ForeignToUSD)))
		assert.True(t, rate.Equal(e.DisplayRate(rate, "BTC", USDToForeign)))
	})

	t.Run("fiat usd-to-foreign is the raw rate", func(t *testing.T) {
		assert.True(t, d("1415").Equal(e.DisplayRate(d("1415"), "ARS", USDToForeign)))
	})

	t.Run("fiat foreign-to-usd is the reciprocal", func(t *testing.T) {
		got := e.DisplayRate(d("1415"), "ARS", ForeignToUSD)
		want := decimal.NewFromInt(1).Div(d("1415"))
		assert.True(t, want.Equal(got))
	})

	t.Run("missing rate displays as zero", func(t *testing.T) {
		assert.True(t, e.DisplayRate(decimal.Zero, "ARS", ForeignToUSD).IsZero())
	})
}

func TestEffectiveRate(t *testing.T) {
	require.True(t, d("1415").Equal(EffectiveRate(d("1415"), false)))

	inverted := EffectiveRate(d("4"), true)
	require.True(t, d("0.25").Equal(inverted))

	assert.True(t, EffectiveRate(decimal.Zero, true).IsZero())
	assert.True(t, EffectiveRate(decimal.Zero, false).IsZero())
}

func TestClassifierDiscriminatesNotCodeShape(t *testing.T) {
	// A three-letter crypto ticker must still multiply, and an unknown
	// three-letter code must divide, so direction cannot come from length.
	e := NewEngine(NewStaticClassifier("BTC"))

	crypto := e.ToUSD(d("2"), "BTC", d("50000"))
	assert.True(t, d("100000").Equal(crypto))

	fiat := e.ToUSD(d("100000"), "XYZ", d("50000"))
	assert.True(t, d("2").Equal(fiat))
}
