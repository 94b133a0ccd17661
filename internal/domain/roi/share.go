package roi

import (
	"fmt"
	"net/url"
	"strconv"

	"telematics_roi/internal/domain/entities"
)

// ScenarioParam is the query parameter carrying the scenario in share links.
const ScenarioParam = "scenario"

// EncodeQuery writes the schema fields of in that differ from their defaults.
// The scenario is written only when it is not the base scenario.
func EncodeQuery(in entities.Inputs, s entities.Scenario) url.Values {
	values := url.Values{}
	defaults := ToRaw(entities.DefaultInputs())
	current := ToRaw(in)
	for _, f := range schema {
		v := current[f.Key]
		if v == defaults[f.Key] {
			continue
		}
		values.Set(f.Key, formatQueryValue(v))
	}
	if sc := ParseScenario(string(s)); sc != entities.ScenarioBase {
		values.Set(ScenarioParam, string(sc))
	}
	return values
}

// DecodeQuery reads the schema fields present in values into a raw record.
// Unknown parameters are ignored; the scenario parameter is returned
// separately.
func DecodeQuery(values url.Values) (map[string]any, entities.Scenario) {
	raw := make(map[string]any)
	for _, f := range schema {
		if _, ok := values[f.Key]; ok {
			raw[f.Key] = values.Get(f.Key)
		}
	}
	return raw, ParseScenario(values.Get(ScenarioParam))
}

func formatQueryValue(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
