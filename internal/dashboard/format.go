package dashboard

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	billion  = decimal.New(1, 9)
	million  = decimal.New(1, 6)
	thousand = decimal.New(1, 3)

	usPrinter = message.NewPrinter(language.AmericanEnglish)
)

// FormatUSD renders v as "$1.23B", "$4.56M", "$7.89K" or "$123.45".
// Non-finite values render as text instead of failing.
func FormatUSD(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$0.00"
	case math.IsInf(v, 1):
		return "$InfinityB"
	case math.IsInf(v, -1):
		return "$-∞"
	}

	d := decimal.NewFromFloat(v)
	switch {
	case d.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(2) + "K"
	}
	return "$" + usPrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
