package response

import (
	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/usecase"
)

type ValidationResponse struct {
	Valid      bool              `json:"valid"`
	Errors     map[string]string `json:"errors"`
	Coerced    map[string]any    `json:"coerced"`
	Advisories []roi.Advisory    `json:"advisories"`
}

func FromValidation(v roi.Validation) ValidationResponse {
	advisories := v.Advisories
	if advisories == nil {
		advisories = []roi.Advisory{}
	}
	return ValidationResponse{
		Valid:      v.Valid,
		Errors:     v.Errors,
		Coerced:    v.Coerced,
		Advisories: advisories,
	}
}

// DisplayBlock holds the headline figures already formatted in the input
// currency.
type DisplayBlock struct {
	Currency           string `json:"currency"`
	FuelSavings        string `json:"fuel_savings"`
	AccidentSavings    string `json:"accident_savings"`
	InsuranceSavings   string `json:"insurance_savings"`
	TotalAnnualSavings string `json:"total_annual_savings"`
	TotalSavings       string `json:"total_savings"`
	TotalCosts         string `json:"total_costs"`
	ROI                string `json:"roi"`
	Payback            string `json:"payback"`
}

type CalculationResponse struct {
	Scenario       entities.Scenario        `json:"scenario"`
	ScenarioFactor float64                  `json:"scenario_factor"`
	Mode           entities.CalculationMode `json:"mode"`
	Inputs         entities.Inputs          `json:"inputs"`
	AdjustedInputs entities.Inputs          `json:"adjusted_inputs"`
	Results        entities.Results         `json:"results"`
	Advisories     []roi.Advisory           `json:"advisories"`
	Display        DisplayBlock             `json:"display"`
}

func FromCalculation(c usecase.Calculation) CalculationResponse {
	advisories := c.Advisories
	if advisories == nil {
		advisories = []roi.Advisory{}
	}
	return CalculationResponse{
		Scenario:       c.Scenario,
		ScenarioFactor: roi.ScenarioFactor(c.Scenario),
		Mode:           c.Mode,
		Inputs:         c.Inputs,
		AdjustedInputs: c.Adjusted,
		Results:        c.Results,
		Advisories:     advisories,
		Display:        NewDisplayBlock(c.Inputs, c.Results),
	}
}

func NewDisplayBlock(in entities.Inputs, r entities.Results) DisplayBlock {
	cur := in.Currency
	return DisplayBlock{
		Currency:           string(cur),
		FuelSavings:        roi.FormatCurrency(r.FuelSavings, cur),
		AccidentSavings:    roi.FormatCurrency(r.AccidentSavings, cur),
		InsuranceSavings:   roi.FormatCurrency(r.InsuranceSavings, cur),
		TotalAnnualSavings: roi.FormatCurrency(r.TotalAnnualSavings, cur),
		TotalSavings:       roi.FormatCurrency(r.TotalSavings, cur),
		TotalCosts:         roi.FormatCurrency(r.TotalCosts, cur),
		ROI:                roi.FormatPercent(r.ROIPct),
		Payback:            roi.FormatPayback(r.Payback, in.TotalMonths()),
	}
}

type CompareResponse struct {
	Scenarios []CalculationResponse `json:"scenarios"`
}

func FromCalculations(calcs []usecase.Calculation) CompareResponse {
	out := CompareResponse{Scenarios: make([]CalculationResponse, 0, len(calcs))}
	for _, c := range calcs {
		out.Scenarios = append(out.Scenarios, FromCalculation(c))
	}
	return out
}

// ShareResponse carries a query string that reproduces the inputs and
// scenario through GET /v1/roi/calculate.
type ShareResponse struct {
	Query string `json:"query"`
	Path  string `json:"path"`
}
