package roi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telematics_roi/internal/domain/entities"
)

func TestParseScenario(t *testing.T) {
	cases := map[string]entities.Scenario{
		"conservative":  entities.ScenarioConservative,
		" Aggressive ":  entities.ScenarioAggressive,
		"base":          entities.ScenarioBase,
		"":              entities.ScenarioBase,
		"optimistic":    entities.ScenarioBase,
		"CONSERVATIVE ": entities.ScenarioConservative,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseScenario(in), in)
	}
}

func TestApplyScenario_BaseIsIdentity(t *testing.T) {
	in := referenceInputs()
	assert.Equal(t, in, ApplyScenario(in, entities.ScenarioBase))
	assert.Equal(t, in, ApplyScenario(ApplyScenario(in, entities.ScenarioBase), entities.ScenarioBase))
	assert.Equal(t, in, ApplyScenario(in, entities.Scenario("unknown")))
}

func TestApplyScenario_ScalesOnlySensitivityFields(t *testing.T) {
	in := referenceInputs()

	cases := []struct {
		scenario entities.Scenario
		factor   float64
	}{
		{entities.ScenarioConservative, 0.75},
		{entities.ScenarioAggressive, 1.25},
	}
	for _, tc := range cases {
		out := ApplyScenario(in, tc.scenario)

		assert.Equal(t, in.FuelSavingsPct*tc.factor, out.FuelSavingsPct)
		assert.Equal(t, in.AccidentReductionPct*tc.factor, out.AccidentReductionPct)
		assert.Equal(t, in.InsuranceReductionPct*tc.factor, out.InsuranceReductionPct)

		rest := out
		rest.FuelSavingsPct = in.FuelSavingsPct
		rest.AccidentReductionPct = in.AccidentReductionPct
		rest.InsuranceReductionPct = in.InsuranceReductionPct
		assert.Equal(t, in, rest, string(tc.scenario))
	}
}

func TestApplyScenario_DoesNotMutateInput(t *testing.T) {
	in := referenceInputs()
	before := in
	_ = ApplyScenario(in, entities.ScenarioAggressive)
	assert.Equal(t, before, in)
}

func TestScenarioFactor(t *testing.T) {
	assert.Equal(t, 0.75, ScenarioFactor(entities.ScenarioConservative))
	assert.Equal(t, 1.0, ScenarioFactor(entities.ScenarioBase))
	assert.Equal(t, 1.25, ScenarioFactor(entities.ScenarioAggressive))
}

func TestScenarioOrderingOfSavings(t *testing.T) {
	in := referenceInputs()
	low := Calculate(ApplyScenario(in, entities.ScenarioConservative))
	mid := Calculate(ApplyScenario(in, entities.ScenarioBase))
	high := Calculate(ApplyScenario(in, entities.ScenarioAggressive))

	assert.Less(t, low.TotalAnnualSavings, mid.TotalAnnualSavings)
	assert.Less(t, mid.TotalAnnualSavings, high.TotalAnnualSavings)
	assert.GreaterOrEqual(t, low.Payback.Month, mid.Payback.Month)
}
