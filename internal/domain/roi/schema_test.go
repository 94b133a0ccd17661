package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telematics_roi/internal/domain/entities"
)

func TestSchema_CoversEveryInput(t *testing.T) {
	fields := Schema()
	assert.Len(t, fields, 22)

	seen := map[string]bool{}
	for _, f := range fields {
		assert.False(t, seen[f.Key], "duplicate key %s", f.Key)
		seen[f.Key] = true
		assert.NotEmpty(t, f.Label)
		if f.Type == TypeInteger || f.Type == TypeNumber {
			assert.LessOrEqual(t, f.Min, f.Max, f.Key)
		}
	}

	f, ok := LookupField(KeyCurrency)
	require.True(t, ok)
	assert.Equal(t, []string{"EUR", "USD", "GBP"}, f.Enum)

	_, ok = LookupField("npv")
	assert.False(t, ok)
}

func TestDefaultInputsAreValid(t *testing.T) {
	v := ValidateInputs(entities.DefaultInputs())
	assert.True(t, v.Valid, "errors: %v", v.Errors)
	assert.Empty(t, v.Advisories)
}

func TestToRawRoundTrip(t *testing.T) {
	raw := ToRaw(referenceInputs())
	assert.Equal(t, 50, raw[KeyVehicleCount])
	assert.Equal(t, "EUR", raw[KeyCurrency])
	assert.Equal(t, "2030-01", raw[KeyStartMonth])

	v := Validate(raw)
	require.True(t, v.Valid)
	assert.Equal(t, referenceInputs(), v.Inputs)
}

func TestMergeRaw(t *testing.T) {
	base := map[string]any{KeyVehicleCount: 10, KeyCurrency: "EUR", "stray": 1}
	overrides := map[string]any{KeyVehicleCount: 20, KeyAdoptionPct: "", "other": "x"}

	out := MergeRaw(base, overrides)

	assert.Equal(t, map[string]any{KeyVehicleCount: 20, KeyCurrency: "EUR", KeyAdoptionPct: ""}, out)
	assert.Equal(t, 10, base[KeyVehicleCount])
}

func TestMergeDefaults(t *testing.T) {
	out := MergeDefaults(map[string]any{KeyVehicleCount: "75"})
	assert.Len(t, out, 22)
	assert.Equal(t, "75", out[KeyVehicleCount])
	assert.Equal(t, 1.9, out[KeyFuelPricePerLitre])

	v := Validate(out)
	require.True(t, v.Valid)
	assert.Equal(t, 75, v.Inputs.VehicleCount)
}
