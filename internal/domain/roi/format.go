package roi

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"telematics_roi/internal/domain/entities"
)

var currencySymbols = map[entities.Currency]string{
	entities.CurrencyEUR: "€",
	entities.CurrencyUSD: "$",
	entities.CurrencyGBP: "£",
}

// CurrencySymbol returns the display symbol for c, or "" when unknown.
func CurrencySymbol(c entities.Currency) string {
	return currencySymbols[c]
}

// FormatCurrency renders v rounded to whole units with thousands separators
// and the currency symbol, e.g. "€53,939". Unknown currencies render the raw
// value without a symbol.
func FormatCurrency(v float64, c entities.Currency) string {
	sym, ok := currencySymbols[c]
	if !ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := FormatNumber(v, 0)
	if strings.HasPrefix(s, "-") {
		return "-" + sym + s[1:]
	}
	return sym + s
}

// FormatNumber renders v with the given decimal places and thousands
// separators. Rounding is half away from zero.
func FormatNumber(v float64, places int32) string {
	return groupThousands(decimal.NewFromFloat(v).StringFixed(places))
}

// FormatPercent renders v with one decimal and a percent sign.
func FormatPercent(v float64) string {
	return FormatNumber(v, 1) + "%"
}

// formatBound renders a schema bound for error messages: no trailing zeros.
func formatBound(v float64) string {
	return groupThousands(decimal.NewFromFloat(v).String())
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + frac
	}
	return sign + intPart
}

// FormatPayback renders a payback outcome for people, e.g. "9 months",
// "not within 36 months" or "never".
func FormatPayback(p entities.Payback, horizonMonths int) string {
	switch {
	case p.Achieved && p.Month == 1:
		return "1 month"
	case p.Achieved:
		return strconv.Itoa(p.Month) + " months"
	case p.Method == entities.PaybackMethodTimeline:
		return "not within " + strconv.Itoa(horizonMonths) + " months"
	default:
		return "never"
	}
}
