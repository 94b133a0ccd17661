package roi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telematics_roi/internal/domain/entities"
)

func referenceInputs() entities.Inputs {
	return entities.Inputs{
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
		Currency:                       entities.CurrencyEUR,
		StartMonth:                     "2030-01",
		UtilisationRampMonths:          2,
		ResaleRecoveryPctHardware:      0,
		MaintenancePerVehiclePerYear:   0,
	}
}

func TestCalculate_ReferenceFixture(t *testing.T) {
	r := Calculate(ApplyScenario(referenceInputs(), entities.ScenarioBase))

	assert.Equal(t, entities.ModeTimeline, r.Mode)
	assert.InDelta(t, 448875, r.BaselineFuelCost, 1e-6)
	assert.InDelta(t, 24239.25, r.FuelSavings, 1e-6)
	assert.InDelta(t, 21060, r.AccidentSavings, 1e-6)
	assert.InDelta(t, 8640, r.InsuranceSavings, 1e-6)
	assert.InDelta(t, 53939.25, r.TotalAnnualSavings, 1e-6)

	assert.Equal(t, entities.ProgramCosts{CapexHardware: 17500, OpexAnnual: 21000, OneOff: 4000, MaintenanceAnnual: 0}, r.Costs)
	require.Len(t, r.Timeline, 36)

	assert.Equal(t, entities.Payback{Month: 9, Achieved: true, Method: entities.PaybackMethodTimeline}, r.Payback)
	assert.Less(t, r.Payback.Month, 10)

	assert.InDelta(t, 84500, r.TotalCosts, 1e-6)
	assert.InDelta(t, 161817.75, r.TotalSavings, 1e-6)
	assert.InDelta(t, 91.5003, r.ROIPct, 1e-3)
	assert.GreaterOrEqual(t, r.ROIPct, 10.0)
}

func TestCalculate_TotalIsExactSumOfComponents(t *testing.T) {
	cases := []entities.Inputs{referenceInputs()}
	in := referenceInputs()
	in.FuelPricePerLitre = 1.737
	in.AdoptionPct = 33.3
	in.AvgAccidentCost = 4123.45
	cases = append(cases, in)
	cases = append(cases, ApplyScenario(in, entities.ScenarioConservative), ApplyScenario(in, entities.ScenarioAggressive))

	for _, c := range cases {
		r := Calculate(c)
		assert.Equal(t, r.FuelSavings+r.AccidentSavings+r.InsuranceSavings, r.TotalAnnualSavings)
	}
}

func TestCalculate_TimelineCumulativeNet(t *testing.T) {
	in := referenceInputs()
	in.ResaleRecoveryPctHardware = 20
	in.MaintenancePerVehiclePerYear = 40
	in.UtilisationRampMonths = 6
	r := Calculate(in)

	require.NotEmpty(t, r.Timeline)
	assert.Equal(t, r.Timeline[0].Net, r.Timeline[0].CumulativeNet)
	for i := 1; i < len(r.Timeline); i++ {
		assert.Equal(t, r.Timeline[i-1].CumulativeNet+r.Timeline[i].Net, r.Timeline[i].CumulativeNet, "month %d", i+1)
		assert.Equal(t, i+1, r.Timeline[i].Month)
	}
}

func TestCalculate_RampAndCostShape(t *testing.T) {
	in := referenceInputs()
	in.UtilisationRampMonths = 4
	in.ResaleRecoveryPctHardware = 10
	r := Calculate(in)

	monthly := r.TotalAnnualSavings / 12
	assert.InDelta(t, monthly*0.25, r.Timeline[0].Savings, 1e-9)
	assert.InDelta(t, monthly*0.5, r.Timeline[1].Savings, 1e-9)
	assert.InDelta(t, monthly*0.75, r.Timeline[2].Savings, 1e-9)
	assert.InDelta(t, monthly, r.Timeline[3].Savings, 1e-9)
	assert.InDelta(t, monthly, r.Timeline[20].Savings, 1e-9)

	run := (r.Costs.OpexAnnual + r.Costs.MaintenanceAnnual) / 12
	assert.InDelta(t, run+r.Costs.CapexHardware+r.Costs.OneOff, r.Timeline[0].Cost, 1e-9)
	assert.InDelta(t, run, r.Timeline[1].Cost, 1e-9)
	last := r.Timeline[len(r.Timeline)-1]
	assert.InDelta(t, run-r.Costs.CapexHardware*0.10, last.Cost, 1e-9)
}

func TestCalculate_ZeroRampMeansFullSavingsImmediately(t *testing.T) {
	in := referenceInputs()
	in.UtilisationRampMonths = 0
	r := Calculate(in)

	assert.InDelta(t, r.TotalAnnualSavings/12, r.Timeline[0].Savings, 1e-9)
	for _, m := range r.Timeline {
		assert.False(t, math.IsNaN(m.Savings) || math.IsInf(m.Savings, 0))
	}
}

func TestCalculate_PaybackIsFirstNonNegativeMonth(t *testing.T) {
	inputs := []entities.Inputs{referenceInputs()}
	slow := referenceInputs()
	slow.HardwareCostPerVehicle = 1200
	slow.UtilisationRampMonths = 12
	inputs = append(inputs, slow)

	for _, in := range inputs {
		r := Calculate(in)
		require.True(t, r.Payback.Achieved)
		for _, m := range r.Timeline[:r.Payback.Month-1] {
			assert.Less(t, m.CumulativeNet, 0.0)
		}
		assert.GreaterOrEqual(t, r.Timeline[r.Payback.Month-1].CumulativeNet, 0.0)
	}
}

func TestCalculate_NoPaybackWithinHorizon(t *testing.T) {
	in := referenceInputs()
	in.FuelSavingsPct = 0
	in.AccidentReductionPct = 0
	in.InsuranceReductionPct = 0
	r := Calculate(in)

	assert.Equal(t, entities.Payback{Month: in.TotalMonths(), Achieved: false, Method: entities.PaybackMethodTimeline}, r.Payback)
	assert.Equal(t, 0.0, r.TotalAnnualSavings)
	assert.InDelta(t, -100, r.ROIPct, 1e-9)

	negative := referenceInputs()
	negative.SubscriptionPerVehiclePerMonth = 500
	r = Calculate(negative)
	assert.False(t, r.Payback.Achieved)
	assert.Equal(t, negative.TotalMonths(), r.Payback.Month)
	assert.LessOrEqual(t, r.Payback.Month, len(r.Timeline))
}

func TestCalculate_ROIZeroWhenNoCosts(t *testing.T) {
	in := referenceInputs()
	in.HardwareCostPerVehicle = 0
	in.SubscriptionPerVehiclePerMonth = 0
	in.ImplementationOneOff = 0
	in.TrainingOneOff = 0
	in.MaintenancePerVehiclePerYear = 0
	r := Calculate(in)

	assert.Equal(t, 0.0, r.TotalCosts)
	assert.Greater(t, r.TotalSavings, 0.0)
	assert.Equal(t, 0.0, r.ROIPct)
	assert.Equal(t, entities.Payback{Month: 1, Achieved: true, Method: entities.PaybackMethodTimeline}, r.Payback)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := referenceInputs()
	in.ResaleRecoveryPctHardware = 15
	a := Calculate(in)
	b := Calculate(in)
	assert.Equal(t, a, b)
}

func TestCalculateWithMode_StraightLine(t *testing.T) {
	r := CalculateWithMode(referenceInputs(), entities.ModeStraightLine)

	assert.Equal(t, entities.ModeStraightLine, r.Mode)
	assert.Nil(t, r.Timeline)
	// (17500 + 4000) / ((53939.25 - 21000) / 12) = 7.83
	assert.Equal(t, entities.Payback{Month: 8, Achieved: true, Method: entities.PaybackMethodStraightLine}, r.Payback)

	timeline := Calculate(referenceInputs())
	assert.NotEqual(t, timeline.Payback, r.Payback)
	assert.Equal(t, timeline.ROIPct, r.ROIPct)
	assert.Equal(t, timeline.TotalAnnualSavings, r.TotalAnnualSavings)
}

func TestCalculateWithMode_StraightLineNever(t *testing.T) {
	in := referenceInputs()
	in.SubscriptionPerVehiclePerMonth = 500
	r := CalculateWithMode(in, entities.ModeStraightLine)

	assert.Equal(t, entities.Payback{Month: 0, Achieved: false, Method: entities.PaybackMethodStraightLine}, r.Payback)
}

func TestCalculateWithMode_UnknownModeUsesTimeline(t *testing.T) {
	r := CalculateWithMode(referenceInputs(), entities.CalculationMode("bogus"))
	assert.Equal(t, entities.ModeTimeline, r.Mode)
	assert.Len(t, r.Timeline, 36)
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want entities.CalculationMode
		ok   bool
	}{
		{"", entities.ModeTimeline, true},
		{"timeline", entities.ModeTimeline, true},
		{" STRAIGHT_LINE ", entities.ModeStraightLine, true},
		{"simple", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseMode(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
