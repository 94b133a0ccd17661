package roi

import (
	"math"
	"strings"

	"telematics_roi/internal/domain/entities"
)

// ParseMode maps a mode identifier to a CalculationMode. The empty string is
// the timeline mode; anything else unknown is rejected so that a straight-line
// figure is never returned where a timeline one was asked for.
func ParseMode(s string) (entities.CalculationMode, bool) {
	switch entities.CalculationMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", entities.ModeTimeline:
		return entities.ModeTimeline, true
	case entities.ModeStraightLine:
		return entities.ModeStraightLine, true
	}
	return "", false
}

// Calculate runs the reference timeline engine on validated inputs.
func Calculate(in entities.Inputs) entities.Results {
	return CalculateWithMode(in, entities.ModeTimeline)
}

// CalculateWithMode runs the engine at the requested fidelity. Unknown modes
// use the timeline engine. Inputs must have passed validation; the engine
// never fails and never returns NaN or Inf for such inputs.
func CalculateWithMode(in entities.Inputs, mode entities.CalculationMode) entities.Results {
	r := entities.Results{Mode: entities.ModeTimeline}

	adoption := in.AdoptionPct / 100
	r.BaselineFuelCost = float64(in.VehicleCount) * in.AnnualKmPerVehicle * (in.FuelConsumptionLPer100km / 100) * in.FuelPricePerLitre
	r.FuelSavings = r.BaselineFuelCost * (in.FuelSavingsPct / 100) * adoption
	r.AccidentSavings = in.BaselineAccidentsPerYear * (in.AccidentReductionPct / 100) * adoption * in.AvgAccidentCost
	r.InsuranceSavings = in.AnnualInsurancePremium * (in.InsuranceReductionPct / 100) * adoption
	r.TotalAnnualSavings = r.FuelSavings + r.AccidentSavings + r.InsuranceSavings

	r.Costs = ProgramCostsOf(in)

	years := float64(in.TimeHorizonYears)
	r.TotalCosts = r.Costs.CapexHardware + r.Costs.OneOff + (r.Costs.OpexAnnual+r.Costs.MaintenanceAnnual)*years
	r.TotalSavings = r.TotalAnnualSavings * years
	r.ROIPct = simpleROI(r.TotalSavings, r.TotalCosts)

	if mode == entities.ModeStraightLine {
		r.Mode = entities.ModeStraightLine
		r.Payback = straightLinePayback(r.TotalAnnualSavings, r.Costs)
		return r
	}

	r.Timeline = buildTimeline(in, r.TotalAnnualSavings, r.Costs)
	r.Payback = timelinePayback(r.Timeline)
	return r
}

// ProgramCostsOf derives the program cost aggregates from inputs.
func ProgramCostsOf(in entities.Inputs) entities.ProgramCosts {
	vehicles := float64(in.VehicleCount)
	return entities.ProgramCosts{
		CapexHardware:     vehicles * in.HardwareCostPerVehicle,
		OpexAnnual:        vehicles * in.SubscriptionPerVehiclePerMonth * 12,
		OneOff:            in.ImplementationOneOff + in.TrainingOneOff,
		MaintenanceAnnual: vehicles * in.MaintenancePerVehiclePerYear,
	}
}

func buildTimeline(in entities.Inputs, annualSavings float64, costs entities.ProgramCosts) []entities.TimelineMonth {
	total := in.TotalMonths()
	ramp := in.UtilisationRampMonths
	monthlyFull := annualSavings / 12
	monthlyRunCost := (costs.OpexAnnual + costs.MaintenanceAnnual) / 12
	resale := 0.0
	if in.ResaleRecoveryPctHardware > 0 {
		resale = costs.CapexHardware * in.ResaleRecoveryPctHardware / 100
	}

	timeline := make([]entities.TimelineMonth, 0, total)
	cumulative := 0.0
	for i := 0; i < total; i++ {
		factor := 1.0
		if ramp > 0 && i < ramp {
			factor = float64(i+1) / float64(ramp)
		}
		savings := monthlyFull * factor

		cost := monthlyRunCost
		if i == 0 {
			cost += costs.CapexHardware + costs.OneOff
		}
		if i == total-1 && resale > 0 {
			cost -= resale
		}

		net := savings - cost
		cumulative += net
		timeline = append(timeline, entities.TimelineMonth{
			Month:         i + 1,
			Savings:       savings,
			Cost:          cost,
			Net:           net,
			CumulativeNet: cumulative,
		})
	}
	return timeline
}

func timelinePayback(timeline []entities.TimelineMonth) entities.Payback {
	for _, m := range timeline {
		if m.CumulativeNet >= 0 {
			return entities.Payback{Month: m.Month, Achieved: true, Method: entities.PaybackMethodTimeline}
		}
	}
	return entities.Payback{Month: len(timeline), Achieved: false, Method: entities.PaybackMethodTimeline}
}

func straightLinePayback(annualSavings float64, costs entities.ProgramCosts) entities.Payback {
	initial := costs.CapexHardware + costs.OneOff
	netMonthly := (annualSavings - costs.OpexAnnual - costs.MaintenanceAnnual) / 12
	if netMonthly <= 0 {
		return entities.Payback{Achieved: false, Method: entities.PaybackMethodStraightLine}
	}
	months := math.Ceil(initial / netMonthly)
	if math.IsInf(months, 0) || math.IsNaN(months) || months > math.MaxInt32 {
		return entities.Payback{Achieved: false, Method: entities.PaybackMethodStraightLine}
	}
	return entities.Payback{Month: int(months), Achieved: true, Method: entities.PaybackMethodStraightLine}
}

func simpleROI(totalSavings, totalCosts float64) float64 {
	if totalCosts == 0 {
		return 0
	}
	return (totalSavings - totalCosts) / totalCosts * 100
}
