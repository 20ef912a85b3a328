package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMajorUnit_MinorUnitCurrency(t *testing.T) {
	amount := ToMajorUnit(15000, "GHS")
	assert.True(t, amount.Equal(decimal.RequireFromString("150.00")),
		"expected 150.00, got %s", amount)
}

func TestToMajorUnit_USD(t *testing.T) {
	amount := ToMajorUnit(2500, "USD")
	assert.True(t, amount.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", amount)
}

func TestToMajorUnit_UnknownCurrencyPassesThrough(t *testing.T) {
	amount := ToMajorUnit(5000, "JPY")
	assert.True(t, amount.Equal(decimal.NewFromInt(5000)))
}

func TestToMinorUnit_RoundsToNearestInteger(t *testing.T) {
	minor := ToMinorUnit(decimal.RequireFromString("10.999"), "NGN")
	assert.Equal(t, int64(1100), minor)
}

func TestRoundTrip_AllMinorUnitCurrencies(t *testing.T) {
	samples := []int64{0, 1, 50, 99, 100, 15000, 123456789}

	for code := range minorUnitExponent2 {
		for _, x := range samples {
			got := ToMinorUnit(ToMajorUnit(x, code), code)
			assert.Equal(t, x, got, "round trip failed for %d %s", x, code)
		}
	}
}

func TestRoundTrip_PassThroughCurrency(t *testing.T) {
	for _, x := range []int64{0, 1, 500, 99999} {
		got := ToMinorUnit(ToMajorUnit(x, "XOF"), "XOF")
		assert.Equal(t, x, got)
	}
}
