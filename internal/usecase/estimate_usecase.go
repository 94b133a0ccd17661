package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/infrastructure/metrics"
	"telematics_roi/internal/usecase/interfaces"
	"telematics_roi/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInputs     = errors.New("invalid inputs")
	ErrInvalidMode       = errors.New("invalid calculation mode")
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// ValidationError carries the per-field messages and the coerced record of a
// rejected input set. errors.Is(err, ErrInvalidInputs) holds for it.
type ValidationError struct {
	Errors  map[string]string
	Coerced map[string]any
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid inputs: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInputs
}

// CalculateCommand is one recompute request: a raw input record plus the
// scenario and mode identifiers as received from the caller.
type CalculateCommand struct {
	Name     string
	Inputs   map[string]any
	Scenario string
	Mode     string
}

// Calculation is the outcome of a successful recompute. Inputs are the
// validated inputs before the scenario adjustment, Adjusted what the engine
// actually ran on.
type Calculation struct {
	Scenario   entities.Scenario
	Mode       entities.CalculationMode
	Inputs     entities.Inputs
	Adjusted   entities.Inputs
	Results    entities.Results
	Advisories []roi.Advisory
}

//go:generate mockgen -destination=../adapter/http/handlers/mocks/mock_estimate_usecase.go -package=mocks telematics_roi/internal/usecase IEstimateUseCase

// IEstimateUseCase exposes the estimator pipeline:
// raw inputs => validation => scenario adjustment => calculation engine.
type IEstimateUseCase interface {
	Validate(ctx context.Context, raw map[string]any) roi.Validation
	Calculate(ctx context.Context, cmd CalculateCommand) (Calculation, error)
	CompareScenarios(ctx context.Context, cmd CalculateCommand) ([]Calculation, error)
	SaveEstimate(ctx context.Context, cmd CalculateCommand) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	DeleteByID(ctx context.Context, id string) error
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, log *zap.Logger) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, log: logger.OrNop(log), now: time.Now}
}

func (u *EstimateUseCase) Validate(_ context.Context, raw map[string]any) roi.Validation {
	v := roi.ValidateAt(raw, u.now())
	u.observeValidation(v)
	return v
}

func (u *EstimateUseCase) Calculate(ctx context.Context, cmd CalculateCommand) (Calculation, error) {
	mode, ok := roi.ParseMode(cmd.Mode)
	if !ok {
		return Calculation{}, ErrInvalidMode
	}
	scenario := roi.ParseScenario(cmd.Scenario)

	start := time.Now()
	v := u.Validate(ctx, cmd.Inputs)
	if !v.Valid {
		metrics.CalculationsTotal.WithLabelValues(string(scenario), string(mode), "invalid").Inc()
		u.log.Debug("roi inputs rejected", zap.Any("errors", v.Errors))
		return Calculation{}, &ValidationError{Errors: v.Errors, Coerced: v.Coerced}
	}

	calc := run(v.Inputs, scenario, mode)
	calc.Advisories = v.Advisories
	metrics.CalculationDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())

	outcome := "no_payback"
	if calc.Results.Payback.Achieved {
		outcome = "payback"
	}
	metrics.CalculationsTotal.WithLabelValues(string(scenario), string(mode), outcome).Inc()
	u.log.Info("roi calculated",
		zap.String("scenario", string(scenario)),
		zap.String("mode", string(mode)),
		zap.Int("vehicles", calc.Inputs.VehicleCount),
		zap.Float64("annual_savings", calc.Results.TotalAnnualSavings),
		zap.Int("payback_month", calc.Results.Payback.Month),
		zap.Bool("payback_achieved", calc.Results.Payback.Achieved),
		zap.Float64("roi_pct", calc.Results.ROIPct),
	)
	return calc, nil
}

// CompareScenarios calculates the same inputs under every scenario, most
// cautious first. cmd.Scenario is ignored.
func (u *EstimateUseCase) CompareScenarios(ctx context.Context, cmd CalculateCommand) ([]Calculation, error) {
	out := make([]Calculation, 0, len(entities.Scenarios))
	for _, s := range entities.Scenarios {
		c := cmd
		c.Scenario = string(s)
		calc, err := u.Calculate(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, calc)
	}
	return out, nil
}

func (u *EstimateUseCase) SaveEstimate(ctx context.Context, cmd CalculateCommand) (entities.Estimate, error) {
	calc, err := u.Calculate(ctx, cmd)
	if err != nil {
		return entities.Estimate{}, err
	}

	e := entities.Estimate{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(cmd.Name),
		Scenario:  calc.Scenario,
		Mode:      calc.Mode,
		Inputs:    calc.Inputs,
		Results:   calc.Results,
		CreatedAt: u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Error("estimate create failed", zap.String("estimate_id", e.ID), zap.Error(err))
		return entities.Estimate{}, err
	}
	metrics.EstimatesSavedTotal.Inc()
	u.log.Info("estimate saved", zap.String("estimate_id", created.ID))

	created.Results = calc.Results
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	// Saved inputs passed validation when stored; the engine is pure, so
	// the results are rebuilt instead of trusted from storage.
	e.Results = run(e.Inputs, e.Scenario, e.Mode).Results
	return e, nil
}

func (u *EstimateUseCase) DeleteByID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrEstimateNotFound
	}
	u.log.Info("estimate deleted", zap.String("estimate_id", id))
	return nil
}

func (u *EstimateUseCase) observeValidation(v roi.Validation) {
	for field := range v.Errors {
		metrics.ValidationFailuresTotal.WithLabelValues(field).Inc()
	}
	for _, a := range v.Advisories {
		metrics.AdvisoriesTotal.WithLabelValues(a.Field).Inc()
		u.log.Warn("roi input advisory", zap.String("field", a.Field), zap.String("message", a.Message))
	}
}

func run(in entities.Inputs, scenario entities.Scenario, mode entities.CalculationMode) Calculation {
	adjusted := roi.ApplyScenario(in, scenario)
	return Calculation{
		Scenario: scenario,
		Mode:     mode,
		Inputs:   in,
		Adjusted: adjusted,
		Results:  roi.CalculateWithMode(adjusted, mode),
	}
}
