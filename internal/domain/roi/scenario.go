package roi

import (
	"strings"

	"telematics_roi/internal/domain/entities"
)

var scenarioFactors = map[entities.Scenario]float64{
	entities.ScenarioConservative: 0.75,
	entities.ScenarioAggressive:   1.25,
}

// ParseScenario maps a scenario identifier to a Scenario. Anything unknown,
// including the empty string, is the base scenario.
func ParseScenario(s string) entities.Scenario {
	sc := entities.Scenario(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := scenarioFactors[sc]; ok {
		return sc
	}
	return entities.ScenarioBase
}

// ScenarioFactor is the multiplier the scenario applies to the sensitivity
// percentages. Unknown scenarios return 1.
func ScenarioFactor(s entities.Scenario) float64 {
	if f, ok := scenarioFactors[s]; ok {
		return f
	}
	return 1
}

// ApplyScenario returns a copy of in with fuel savings, accident reduction
// and insurance reduction percentages scaled by the scenario factor. The base
// scenario and unknown values return in unchanged.
func ApplyScenario(in entities.Inputs, s entities.Scenario) entities.Inputs {
	f, ok := scenarioFactors[s]
	if !ok {
		return in
	}
	out := in
	out.FuelSavingsPct = in.FuelSavingsPct * f
	out.AccidentReductionPct = in.AccidentReductionPct * f
	out.InsuranceReductionPct = in.InsuranceReductionPct * f
	return out
}
