package interfaces

import (
	"context"
	"telematics_roi/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository_interface.go -package=mock_interfaces

// IEstimateRepository abstracts persistence of saved estimates.
//
// Lookups return a zero Estimate (empty ID) and a nil error when nothing
// matches; the use case turns that into ErrEstimateNotFound.
//
// Implementations only need to round-trip ID, Name, Scenario, Mode, Inputs
// and CreatedAt. Results are recomputed by the use case.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) (entities.Estimate, error)
}
