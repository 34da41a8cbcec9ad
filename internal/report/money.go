package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// AUD formats a dollar amount as whole-dollar Australian currency.
func AUD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0"
	}
	dollars := int64(math.Round(v))
	s := money.New(dollars*100, money.AUD).Display()
	return strings.TrimSuffix(s, ".00")
}

// Percent formats a fraction as a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// Years formats a year count with its unit.
func Years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

// PropertyCount formats a property count with its unit.
func PropertyCount(n int) string {
	if n == 1 {
		return "1 property"
	}
	return fmt.Sprintf("%d properties", n)
}
