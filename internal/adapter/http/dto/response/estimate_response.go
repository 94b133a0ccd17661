package response

import (
	"time"

	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/infrastructure/presets"
)

type EstimateResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name,omitempty"`
	Scenario  entities.Scenario        `json:"scenario"`
	Mode      entities.CalculationMode `json:"mode"`
	Inputs    entities.Inputs          `json:"inputs"`
	Results   entities.Results         `json:"results"`
	Display   DisplayBlock             `json:"display"`
	CreatedAt time.Time                `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:        e.ID,
		Name:      e.Name,
		Scenario:  e.Scenario,
		Mode:      e.Mode,
		Inputs:    e.Inputs,
		Results:   e.Results,
		Display:   NewDisplayBlock(e.Inputs, e.Results),
		CreatedAt: e.CreatedAt,
	}
}

// PresetResponse exposes a preset with its inputs already merged over the
// defaults, ready to post to /v1/roi/calculate.
type PresetResponse struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Scenario    entities.Scenario `json:"scenario"`
	Inputs      map[string]any    `json:"inputs"`
}

func FromPreset(p presets.Preset) PresetResponse {
	return PresetResponse{
		Name:        p.Name,
		Title:       p.Title,
		Description: p.Description,
		Scenario:    p.Scenario,
		Inputs:      roi.MergeDefaults(p.Inputs),
	}
}
