package entities

import "time"

// Currency is the display currency of an estimate. Only the symbol changes,
// amounts are never converted.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// Currencies lists the accepted currency codes in display order.
var Currencies = []Currency{CurrencyEUR, CurrencyUSD, CurrencyGBP}

// Scenario selects the sensitivity adjustment applied before calculating.
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioBase         Scenario = "base"
	ScenarioAggressive   Scenario = "aggressive"
)

// Scenarios lists the known scenarios from most to least cautious.
var Scenarios = []Scenario{ScenarioConservative, ScenarioBase, ScenarioAggressive}

// Inputs is the validated parameter set of an ROI estimate.
//
// Field groups:
//   - fleet/usage: VehicleCount .. FuelPricePerLitre
//   - risk/insurance: BaselineAccidentsPerYear .. AnnualInsurancePremium
//   - program effect (percent): FuelSavingsPct .. AdoptionPct
//   - cost/timeline: the rest
//
// DiscountRatePct is kept in the schema but no calculation reads it.
type Inputs struct {
	VehicleCount             int     `json:"vehicleCount" yaml:"vehicleCount"`
	AnnualKmPerVehicle       float64 `json:"annualKmPerVehicle" yaml:"annualKmPerVehicle"`
	FuelConsumptionLPer100km float64 `json:"fuelConsumptionLPer100km" yaml:"fuelConsumptionLPer100km"`
	FuelPricePerLitre        float64 `json:"fuelPricePerLitre" yaml:"fuelPricePerLitre"`

	BaselineAccidentsPerYear float64 `json:"baselineAccidentsPerYear" yaml:"baselineAccidentsPerYear"`
	AvgAccidentCost          float64 `json:"avgAccidentCost" yaml:"avgAccidentCost"`
	AnnualInsurancePremium   float64 `json:"annualInsurancePremium" yaml:"annualInsurancePremium"`

	FuelSavingsPct        float64 `json:"fuelSavingsPct" yaml:"fuelSavingsPct"`
	AccidentReductionPct  float64 `json:"accidentReductionPct" yaml:"accidentReductionPct"`
	InsuranceReductionPct float64 `json:"insuranceReductionPct" yaml:"insuranceReductionPct"`
	AdoptionPct           float64 `json:"adoptionPct" yaml:"adoptionPct"`

	HardwareCostPerVehicle         float64  `json:"hardwareCostPerVehicle" yaml:"hardwareCostPerVehicle"`
	SubscriptionPerVehiclePerMonth float64  `json:"subscriptionPerVehiclePerMonth" yaml:"subscriptionPerVehiclePerMonth"`
	ImplementationOneOff           float64  `json:"implementationOneOff" yaml:"implementationOneOff"`
	TrainingOneOff                 float64  `json:"trainingOneOff" yaml:"trainingOneOff"`
	TimeHorizonYears               int      `json:"timeHorizonYears" yaml:"timeHorizonYears"`
	DiscountRatePct                float64  `json:"discountRatePct" yaml:"discountRatePct"`
	Currency                       Currency `json:"currency" yaml:"currency"`
	StartMonth                     string   `json:"startMonth" yaml:"startMonth"`
	UtilisationRampMonths          int      `json:"utilisationRampMonths" yaml:"utilisationRampMonths"`
	ResaleRecoveryPctHardware      float64  `json:"resaleRecoveryPctHardware" yaml:"resaleRecoveryPctHardware"`
	MaintenancePerVehiclePerYear   float64  `json:"maintenancePerVehiclePerYear" yaml:"maintenancePerVehiclePerYear"`
}

// StartMonthLayout is the layout of Inputs.StartMonth.
const StartMonthLayout = "2006-01"

// DefaultInputs returns the documented defaults. StartMonth defaults to the
// current UTC month.
func DefaultInputs() Inputs {
	return Inputs{
		VehicleCount:                   50,
		AnnualKmPerVehicle:             45000,
		FuelConsumptionLPer100km:       10.5,
		FuelPricePerLitre:              1.90,
		BaselineAccidentsPerYear:       12,
		AvgAccidentCost:                6500,
		AnnualInsurancePremium:         120000,
		FuelSavingsPct:                 6,
		AccidentReductionPct:           30,
		InsuranceReductionPct:          8,
		AdoptionPct:                    90,
		HardwareCostPerVehicle:         350,
		SubscriptionPerVehiclePerMonth: 35,
		ImplementationOneOff:           2500,
		TrainingOneOff:                 1500,
		TimeHorizonYears:               3,
		DiscountRatePct:                8,
		Currency:                       CurrencyEUR,
		StartMonth:                     time.Now().UTC().Format(StartMonthLayout),
		UtilisationRampMonths:          2,
		ResaleRecoveryPctHardware:      0,
		MaintenancePerVehiclePerYear:   0,
	}
}

// TotalMonths is the horizon expressed in months.
func (in Inputs) TotalMonths() int {
	return in.TimeHorizonYears * 12
}
