package request

import (
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/usecase"
)

// CalculateRequest is the body shared by the validate, calculate, compare,
// share and estimate endpoints.
//
// Inputs is a raw record keyed by schema key. Values may be numbers or
// strings; validation coerces them. With MergeDefaults set, missing keys are
// filled from the documented defaults before validation.
type CalculateRequest struct {
	Name          string         `json:"name"`
	Inputs        map[string]any `json:"inputs" binding:"required"`
	Scenario      string         `json:"scenario"`
	Mode          string         `json:"mode"`
	MergeDefaults bool           `json:"merge_defaults"`
}

// RawInputs returns the record to validate.
func (r CalculateRequest) RawInputs() map[string]any {
	if r.MergeDefaults {
		return roi.MergeDefaults(r.Inputs)
	}
	return r.Inputs
}

func (r CalculateRequest) ToCommand() usecase.CalculateCommand {
	return usecase.CalculateCommand{
		Name:     r.Name,
		Inputs:   r.RawInputs(),
		Scenario: r.Scenario,
		Mode:     r.Mode,
	}
}
