package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in a given currency.
// Projections run in float64; Money is only built at the presentation edge.
type Money struct {
	decimal.Decimal
	code string
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64, code string) Money {
	return Money{decimal.NewFromFloat(value), normalize(code)}
}

// IsKnown reports whether code is an ISO 4217 currency known to go-money
func IsKnown(code string) bool {
	return money.GetCurrency(normalize(code)) != nil
}

// Validate returns an error for unknown currency codes
func Validate(code string) error {
	if !IsKnown(code) {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (m Money) currency() *money.Currency {
	// money.New always yields a non-nil currency, even for unknown codes
	return money.New(0, m.code).Currency()
}

// Fraction returns the number of minor-unit digits of the currency
func (m Money) Fraction() int {
	return m.currency().Fraction
}

// Round rounds the amount to the currency's minor unit
func (m Money) Round() Money {
	return Money{m.Decimal.Round(int32(m.Fraction())), m.code}
}

// MinorUnits returns the rounded amount expressed in minor units (cents for USD)
func (m Money) MinorUnits() int64 {
	return m.Round().Decimal.Shift(int32(m.Fraction())).IntPart()
}

// String returns the plain fixed-point representation (no symbol, no grouping)
func (m Money) String() string {
	return m.Decimal.StringFixed(int32(m.Fraction()))
}

// Display formats the amount with symbol and digit grouping, e.g. "$1,234.50"
func (m Money) Display() string {
	return m.currency().Formatter().Format(m.MinorUnits())
}

// maxMinorUnits keeps amounts inside int64 minor units for go-money formatting
const maxMinorUnits = 9e15

// Format formats a float amount in the given currency for display.
// Non-finite or out-of-range amounts fall back to plain notation with the ISO code.
func Format(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > maxMinorUnits/100 {
		return fmt.Sprintf("%s %g", normalize(code), amount)
	}
	return NewMoney(amount, code).Display()
}
