package domain

import "fmt"

// Currency is a 3-letter ISO 4217 code.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

// fractionDigits maps each supported currency to its canonical number of
// fractional digits. Amounts are always rounded to this scale.
var fractionDigits = map[Currency]int32{
	"AUD": 2,
	"BHD": 3,
	"CAD": 2,
	"CHF": 2,
	"CZK": 2,
	"DKK": 2,
	"EUR": 2,
	"GBP": 2,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"NOK": 2,
	"OMR": 3,
	"PLN": 2,
	"SEK": 2,
	"TND": 3,
	"USD": 2,
}

// ParseCurrency returns the Currency for a code, or an error if the code is
// not a supported ISO 4217 currency.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported currency code: %q", code)
	}
	return c, nil
}

// IsValid reports whether the currency is one of the supported ISO codes.
func (c Currency) IsValid() bool {
	_, ok := fractionDigits[c]
	return ok
}

// FractionDigits returns the canonical number of fractional digits for the
// currency. Unknown codes fall back to 2.
func (c Currency) FractionDigits() int32 {
	if d, ok := fractionDigits[c]; ok {
		return d
	}
	return 2
}

func (c Currency) String() string {
	return string(c)
}
