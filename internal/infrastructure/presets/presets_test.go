package presets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
)

func TestBuiltin_AllPresetsValidate(t *testing.T) {
	c := Builtin()
	list := c.List()
	require.NotEmpty(t, list)

	for _, p := range list {
		v := roi.Validate(roi.MergeDefaults(p.Inputs))
		assert.True(t, v.Valid, "preset %s: %v", p.Name, v.Errors)
		assert.Contains(t, entities.Scenarios, p.Scenario, p.Name)
	}
}

func TestBuiltin_RegionalHaulageIsReferenceFleet(t *testing.T) {
	p, err := Builtin().Get("regional-haulage")
	require.NoError(t, err)

	v := roi.Validate(roi.MergeDefaults(p.Inputs))
	require.True(t, v.Valid)
	r := roi.Calculate(roi.ApplyScenario(v.Inputs, p.Scenario))
	assert.InDelta(t, 53939.25, r.TotalAnnualSavings, 1e-6)
	assert.Equal(t, 9, r.Payback.Month)
}

func TestGet_NotFound(t *testing.T) {
	_, err := Builtin().Get("space-shuttles")
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("presets:\n  - title: no name\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("presets:\n  - name: a\n  - name: a\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse(strings.NewReader("presets:\n  - name: a\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParse_DefaultsScenarioAndAllowsEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader("presets:\n  - name: bare\n"))
	require.NoError(t, err)
	p, err := c.Get("bare")
	require.NoError(t, err)
	assert.Equal(t, entities.ScenarioBase, p.Scenario)

	c, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.List())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: custom\n    inputs:\n      vehicleCount: 5\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	p, err := c.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Inputs["vehicleCount"])

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
