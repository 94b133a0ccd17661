package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telematics_roi/internal/domain/entities"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "€53,939", FormatCurrency(53939.25, entities.CurrencyEUR))
	assert.Equal(t, "$1,234,568", FormatCurrency(1234567.5, entities.CurrencyUSD))
	assert.Equal(t, "£0", FormatCurrency(0, entities.CurrencyGBP))
	assert.Equal(t, "-€21,003", FormatCurrency(-21002.53, entities.CurrencyEUR))
	assert.Equal(t, "999", FormatCurrency(999, entities.Currency("")))
	assert.Equal(t, "1234.5", FormatCurrency(1234.5, entities.Currency("JPY")))
}

func TestFormatNumberAndPercent(t *testing.T) {
	assert.Equal(t, "448,875.00", FormatNumber(448875, 2))
	assert.Equal(t, "12", FormatNumber(12, 0))
	assert.Equal(t, "-1,000.5", FormatNumber(-1000.5, 1))
	assert.Equal(t, "91.5%", FormatPercent(91.50029585798817))
	assert.Equal(t, "-100.0%", FormatPercent(-100))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "€", CurrencySymbol(entities.CurrencyEUR))
	assert.Equal(t, "$", CurrencySymbol(entities.CurrencyUSD))
	assert.Equal(t, "£", CurrencySymbol(entities.CurrencyGBP))
	assert.Empty(t, CurrencySymbol("XYZ"))
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0":          "0",
		"100":        "100",
		"1000":       "1,000",
		"123456":     "123,456",
		"1234567.89": "1,234,567.89",
		"-9876543":   "-9,876,543",
	}
	for in, want := range cases {
		assert.Equal(t, want, groupThousands(in), in)
	}
}

func TestFormatPayback(t *testing.T) {
	assert.Equal(t, "9 months", FormatPayback(entities.Payback{Month: 9, Achieved: true, Method: entities.PaybackMethodTimeline}, 36))
	assert.Equal(t, "1 month", FormatPayback(entities.Payback{Month: 1, Achieved: true, Method: entities.PaybackMethodStraightLine}, 36))
	assert.Equal(t, "not within 36 months", FormatPayback(entities.Payback{Month: 36, Method: entities.PaybackMethodTimeline}, 36))
	assert.Equal(t, "never", FormatPayback(entities.Payback{Method: entities.PaybackMethodStraightLine}, 36))
}
