package output

import (
	"math"
	"strconv"

	"github.com/rpgo/growth-calculator/pkg/currency"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount for display in the given ISO currency, e.g. "$1,234.57".
func FormatCurrency(amount float64, code string) string { return currency.Format(amount, code) }

// FormatPercentage formats a value already in percentage units with 2 decimals.
func FormatPercentage(amount float64) string { return fixed2(amount) + "%" }

// fixed2 renders a float with exactly two decimals for machine-readable outputs.
func fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
