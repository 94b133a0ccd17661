// Package roi holds the estimator core: the input schema, validation, the
// scenario adjuster and the calculation engine. Everything here is a pure
// function of its arguments and safe for concurrent use.
package roi

import "telematics_roi/internal/domain/entities"

// FieldType is the declared type of a schema field.
type FieldType string

const (
	TypeInteger FieldType = "integer"
	TypeNumber  FieldType = "number"
	TypeString  FieldType = "string"
	TypeDate    FieldType = "date"
)

// Input keys, as accepted in raw records, JSON bodies and share links.
const (
	KeyVehicleCount                   = "vehicleCount"
	KeyAnnualKmPerVehicle             = "annualKmPerVehicle"
	KeyFuelConsumptionLPer100km       = "fuelConsumptionLPer100km"
	KeyFuelPricePerLitre              = "fuelPricePerLitre"
	KeyBaselineAccidentsPerYear       = "baselineAccidentsPerYear"
	KeyAvgAccidentCost                = "avgAccidentCost"
	KeyAnnualInsurancePremium         = "annualInsurancePremium"
	KeyFuelSavingsPct                 = "fuelSavingsPct"
	KeyAccidentReductionPct           = "accidentReductionPct"
	KeyInsuranceReductionPct          = "insuranceReductionPct"
	KeyAdoptionPct                    = "adoptionPct"
	KeyHardwareCostPerVehicle         = "hardwareCostPerVehicle"
	KeySubscriptionPerVehiclePerMonth = "subscriptionPerVehiclePerMonth"
	KeyImplementationOneOff           = "implementationOneOff"
	KeyTrainingOneOff                 = "trainingOneOff"
	KeyTimeHorizonYears               = "timeHorizonYears"
	KeyDiscountRatePct                = "discountRatePct"
	KeyCurrency                       = "currency"
	KeyStartMonth                     = "startMonth"
	KeyUtilisationRampMonths          = "utilisationRampMonths"
	KeyResaleRecoveryPctHardware      = "resaleRecoveryPctHardware"
	KeyMaintenancePerVehiclePerYear   = "maintenancePerVehiclePerYear"
)

// Field describes one input: its declared type, inclusive bounds for numeric
// fields and the allowed values for enumerated ones.
type Field struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	Min   float64   `json:"min,omitempty"`
	Max   float64   `json:"max,omitempty"`
	Enum  []string  `json:"enum,omitempty"`

	get func(*entities.Inputs) any
	set func(*entities.Inputs, any)
}

var schema = []Field{
	intField(KeyVehicleCount, "Vehicle count", 1, 10000, func(in *entities.Inputs) *int { return &in.VehicleCount }),
	numField(KeyAnnualKmPerVehicle, "Annual km per vehicle", 0, 500000, func(in *entities.Inputs) *float64 { return &in.AnnualKmPerVehicle }),
	numField(KeyFuelConsumptionLPer100km, "Fuel consumption (L/100km)", 0, 100, func(in *entities.Inputs) *float64 { return &in.FuelConsumptionLPer100km }),
	numField(KeyFuelPricePerLitre, "Fuel price per litre", 0, 10, func(in *entities.Inputs) *float64 { return &in.FuelPricePerLitre }),

	numField(KeyBaselineAccidentsPerYear, "Baseline accidents per year", 0, 10000, func(in *entities.Inputs) *float64 { return &in.BaselineAccidentsPerYear }),
	numField(KeyAvgAccidentCost, "Average accident cost", 0, 1000000, func(in *entities.Inputs) *float64 { return &in.AvgAccidentCost }),
	numField(KeyAnnualInsurancePremium, "Annual insurance premium", 0, 100000000, func(in *entities.Inputs) *float64 { return &in.AnnualInsurancePremium }),

	numField(KeyFuelSavingsPct, "Fuel savings %", 0, 100, func(in *entities.Inputs) *float64 { return &in.FuelSavingsPct }),
	numField(KeyAccidentReductionPct, "Accident reduction %", 0, 100, func(in *entities.Inputs) *float64 { return &in.AccidentReductionPct }),
	numField(KeyInsuranceReductionPct, "Insurance reduction %", 0, 100, func(in *entities.Inputs) *float64 { return &in.InsuranceReductionPct }),
	numField(KeyAdoptionPct, "Adoption %", 0, 100, func(in *entities.Inputs) *float64 { return &in.AdoptionPct }),

	numField(KeyHardwareCostPerVehicle, "Hardware cost per vehicle", 0, 10000, func(in *entities.Inputs) *float64 { return &in.HardwareCostPerVehicle }),
	numField(KeySubscriptionPerVehiclePerMonth, "Subscription per vehicle per month", 0, 1000, func(in *entities.Inputs) *float64 { return &in.SubscriptionPerVehiclePerMonth }),
	numField(KeyImplementationOneOff, "Implementation cost", 0, 1000000, func(in *entities.Inputs) *float64 { return &in.ImplementationOneOff }),
	numField(KeyTrainingOneOff, "Training cost", 0, 1000000, func(in *entities.Inputs) *float64 { return &in.TrainingOneOff }),
	intField(KeyTimeHorizonYears, "Time horizon (years)", 1, 10, func(in *entities.Inputs) *int { return &in.TimeHorizonYears }),
	numField(KeyDiscountRatePct, "Discount rate %", 0, 50, func(in *entities.Inputs) *float64 { return &in.DiscountRatePct }),
	{
		Key:   KeyCurrency,
		Label: "Currency",
		Type:  TypeString,
		Enum:  currencyCodes(),
		get:   func(in *entities.Inputs) any { return string(in.Currency) },
		set:   func(in *entities.Inputs, v any) { in.Currency = entities.Currency(v.(string)) },
	},
	{
		Key:   KeyStartMonth,
		Label: "Start month",
		Type:  TypeDate,
		get:   func(in *entities.Inputs) any { return in.StartMonth },
		set:   func(in *entities.Inputs, v any) { in.StartMonth = v.(string) },
	},
	intField(KeyUtilisationRampMonths, "Utilisation ramp (months)", 0, 24, func(in *entities.Inputs) *int { return &in.UtilisationRampMonths }),
	numField(KeyResaleRecoveryPctHardware, "Hardware resale recovery %", 0, 100, func(in *entities.Inputs) *float64 { return &in.ResaleRecoveryPctHardware }),
	numField(KeyMaintenancePerVehiclePerYear, "Maintenance per vehicle per year", 0, 10000, func(in *entities.Inputs) *float64 { return &in.MaintenancePerVehiclePerYear }),
}

var fieldsByKey = func() map[string]Field {
	m := make(map[string]Field, len(schema))
	for _, f := range schema {
		m[f.Key] = f
	}
	return m
}()

func intField(key, label string, min, max float64, ref func(*entities.Inputs) *int) Field {
	return Field{
		Key: key, Label: label, Type: TypeInteger, Min: min, Max: max,
		get: func(in *entities.Inputs) any { return *ref(in) },
		set: func(in *entities.Inputs, v any) {
			n, _ := toFloat(v)
			*ref(in) = int(n)
		},
	}
}

func numField(key, label string, min, max float64, ref func(*entities.Inputs) *float64) Field {
	return Field{
		Key: key, Label: label, Type: TypeNumber, Min: min, Max: max,
		get: func(in *entities.Inputs) any { return *ref(in) },
		set: func(in *entities.Inputs, v any) {
			n, _ := toFloat(v)
			*ref(in) = n
		},
	}
}

func currencyCodes() []string {
	out := make([]string, 0, len(entities.Currencies))
	for _, c := range entities.Currencies {
		out = append(out, string(c))
	}
	return out
}

// Schema returns the input fields in display order.
func Schema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// LookupField returns the schema field for key.
func LookupField(key string) (Field, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// ToRaw flattens typed inputs into a raw record keyed by schema key.
func ToRaw(in entities.Inputs) map[string]any {
	out := make(map[string]any, len(schema))
	for _, f := range schema {
		out[f.Key] = f.get(&in)
	}
	return out
}

// MergeRaw overlays the schema keys present in overrides onto base and
// returns a new record. Unknown keys in overrides are dropped; a key present
// with an empty value still overrides, so validation can report it.
func MergeRaw(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(schema))
	for k, v := range base {
		if _, ok := fieldsByKey[k]; ok {
			out[k] = v
		}
	}
	for k, v := range overrides {
		if _, ok := fieldsByKey[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MergeDefaults fills every schema key missing from raw with its default.
func MergeDefaults(raw map[string]any) map[string]any {
	return MergeRaw(ToRaw(entities.DefaultInputs()), raw)
}
