package entities

import "time"

// Estimate is a saved ROI calculation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only the inputs, scenario and mode are the source of truth. Results are
// recomputed on load because the engine is a pure function of them; the
// stored summary fields exist for listing and debugging.
type Estimate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Scenario  Scenario        `json:"scenario"`
	Mode      CalculationMode `json:"mode"`
	Inputs    Inputs          `json:"inputs"`
	Results   Results         `json:"results"`
	CreatedAt time.Time       `json:"created_at"`
}
