// Package currency converts amounts between provider minor units and the
// canonical major units stored in the ledger. Every boundary where an amount
// crosses between "what the provider reports" and "what is stored" goes
// through this table.
package currency

import "github.com/shopspring/decimal"

// minorUnitExponent2 lists currencies whose smallest reported unit is 1/100
// of the major unit. Amounts in any other currency pass through unchanged.
var minorUnitExponent2 = map[string]bool{
	"NGN": true,
	"GHS": true,
	"KES": true,
	"ZAR": true,
	"EGP": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
	"CAD": true,
	"AUD": true,
}

// HasMinorUnit reports whether the currency is reported in 1/100 minor units
func HasMinorUnit(code string) bool {
	return minorUnitExponent2[code]
}

// ToMajorUnit converts a provider-reported minor unit amount to the
// canonical major unit decimal. Total; unknown currencies pass through.
func ToMajorUnit(amountMinor int64, code string) decimal.Decimal {
	if minorUnitExponent2[code] {
		return decimal.New(amountMinor, -2)
	}
	return decimal.NewFromInt(amountMinor)
}

// ToMinorUnit converts a major unit decimal back to the provider's minor
// units, rounding to the nearest integer. Total; unknown currencies pass
// through.
func ToMinorUnit(amountMajor decimal.Decimal, code string) int64 {
	if minorUnitExponent2[code] {
		return amountMajor.Shift(2).Round(0).IntPart()
	}
	return amountMajor.Round(0).IntPart()
}
