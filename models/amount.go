package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a value in the minor units of its currency, e.g. 1000 EUR is 10.00 euros.
type Amount struct {
	Currency string `json:"currency" validate:"required,len=3"`
	Value    int64  `json:"value"`
}

// Currencies whose minor unit is not 1/100 of the major unit. Everything else
// uses two decimals.
var currencyExponents = map[string]int32{
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"CVE": 0, "DJF": 0, "GNF": 0, "IDR": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
}

// CurrencyExponent returns the number of decimals used by currency.
func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// NewAmount returns an Amount of value minor units.
func NewAmount(currency string, value int64) Amount {
	return Amount{Currency: strings.ToUpper(currency), Value: value}
}

// NewAmountFromDecimal converts a major-unit amount such as 12.50 into minor
// units. Amounts finer than the currency's minor unit are rejected rather than
// rounded.
func NewAmountFromDecimal(currency string, major decimal.Decimal) (Amount, error) {
	minor := major.Shift(CurrencyExponent(currency))
	if !minor.IsInteger() {
		return Amount{}, fmt.Errorf("amount %s has more decimals than %s allows", major.String(), currency)
	}
	if minor.Abs().GreaterThan(decimal.NewFromInt(maxMinorUnits)) {
		return Amount{}, fmt.Errorf("amount %s is out of range", major.String())
	}
	return NewAmount(currency, minor.IntPart()), nil
}

const maxMinorUnits = 1<<53 - 1

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.Value, -CurrencyExponent(a.Currency))
}

// String renders the amount as e.g. "EUR 10.00".
func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Currency, a.Decimal().StringFixed(CurrencyExponent(a.Currency)))
}
