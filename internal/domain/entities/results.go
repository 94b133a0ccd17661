package entities

// CalculationMode selects the fidelity of the calculation engine.
type CalculationMode string

const (
	// ModeTimeline is the reference engine: monthly timeline with ramp-up,
	// up-front costs in month one and hardware resale in the last month.
	ModeTimeline CalculationMode = "timeline"
	// ModeStraightLine skips the timeline and divides up-front costs by the
	// flat monthly net saving.
	ModeStraightLine CalculationMode = "straight_line"
)

// PaybackMethod names the formula that produced a payback figure. Values are
// not comparable across methods.
type PaybackMethod string

const (
	PaybackMethodTimeline     PaybackMethod = "timeline_cumulative"
	PaybackMethodStraightLine PaybackMethod = "straight_line"
)

// Payback is the payback outcome of a calculation.
//
// Timeline method: Month is the 1-indexed first month whose cumulative net is
// >= 0. When the horizon ends first, Month equals the horizon length and
// Achieved is false.
//
// Straight-line method: Month is ceil(initial costs / net monthly saving) and
// is not capped at the horizon. A non-positive monthly saving gives
// Achieved=false and Month=0.
type Payback struct {
	Month    int           `json:"month"`
	Achieved bool          `json:"achieved"`
	Method   PaybackMethod `json:"method"`
}

// ProgramCosts aggregates what the program costs, before timing.
type ProgramCosts struct {
	CapexHardware     float64 `json:"capexHardware"`
	OpexAnnual        float64 `json:"opexAnnual"`
	OneOff            float64 `json:"oneOff"`
	MaintenanceAnnual float64 `json:"maintenanceAnnual"`
}

// TimelineMonth is one month of the cash-flow timeline.
type TimelineMonth struct {
	Month         int     `json:"month"`
	Savings       float64 `json:"savings"`
	Cost          float64 `json:"cost"`
	Net           float64 `json:"net"`
	CumulativeNet float64 `json:"cumulativeNet"`
}

// Results is the output of one calculation. Timeline is nil in
// straight-line mode.
type Results struct {
	Mode CalculationMode `json:"mode"`

	BaselineFuelCost   float64 `json:"baselineFuelCost"`
	FuelSavings        float64 `json:"fuelSavings"`
	AccidentSavings    float64 `json:"accidentSavings"`
	InsuranceSavings   float64 `json:"insuranceSavings"`
	TotalAnnualSavings float64 `json:"totalAnnualSavings"`

	Costs    ProgramCosts    `json:"costs"`
	Timeline []TimelineMonth `json:"timeline,omitempty"`
	Payback  Payback         `json:"payback"`

	TotalSavings float64 `json:"totalSavings"`
	TotalCosts   float64 `json:"totalCosts"`
	ROIPct       float64 `json:"roiPct"`
}
