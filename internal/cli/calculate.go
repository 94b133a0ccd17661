package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	response "telematics_roi/internal/adapter/http/dto/response"
	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/domain/roi"
	"telematics_roi/internal/usecase"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

func newCalculateCmd(a *app) *cobra.Command {
	var (
		in     inputFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "calculate",
		Aliases: []string{"calc"},
		Short:   "Estimate savings, payback and ROI",
		Long: `Estimate annual savings, payback month and ROI for a fleet.

Examples:
  # Defaults
  roi calculate

  # Start from a preset and change the fleet size
  roi calculate --preset urban-delivery --set vehicleCount=80

  # Conservative view of a saved input file, as JSON
  roi calculate -f fleet.yaml --scenario conservative --format json

  # Monthly timeline for a spreadsheet
  roi calculate --preset regional-haulage --format csv > timeline.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case formatTable, formatJSON, formatCSV:
			default:
				return fmt.Errorf("unsupported --format %q (use table, json or csv)", format)
			}

			raw, scenario, err := in.resolve(a)
			if err != nil {
				return err
			}
			uc, err := a.useCase()
			if err != nil {
				return err
			}

			calc, err := uc.Calculate(cmd.Context(), usecase.CalculateCommand{
				Inputs:   raw,
				Scenario: scenario,
				Mode:     in.mode,
			})
			if err != nil {
				return a.reportCalculateError(err)
			}
			a.printAdvisories(calc.Advisories)

			switch format {
			case formatJSON:
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromCalculation(calc))
			case formatCSV:
				if calc.Mode != entities.ModeTimeline {
					return errors.New("--format csv needs the timeline mode")
				}
				return roi.WriteTimelineCSV(a.stdout, calc.Inputs.StartMonth, calc.Results.Timeline)
			default:
				return renderCalculation(a.stdout, calc)
			}
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", formatTable, "output format: table, json or csv")
	return cmd
}

func (a *app) reportCalculateError(err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		renderFieldErrors(a.stderr, verr.Errors)
		return fmt.Errorf("%d invalid input(s)", len(verr.Errors))
	}
	if errors.Is(err, usecase.ErrInvalidMode) {
		return fmt.Errorf("%w (use timeline or straight_line)", err)
	}
	return err
}

func (a *app) printAdvisories(advisories []roi.Advisory) {
	for _, adv := range advisories {
		fmt.Fprintf(a.stderr, "note: %s\n", adv.Message)
	}
}

func renderFieldErrors(w io.Writer, errs map[string]string) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-32s %s\n", k, errs[k])
	}
}

func renderCalculation(w io.Writer, calc usecase.Calculation) error {
	in, r := calc.Inputs, calc.Results
	cur := in.Currency
	years := in.TimeHorizonYears
	money := func(v float64) string { return roi.FormatCurrency(v, cur) }

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Scenario\t%s (x%s)\n", calc.Scenario, roi.FormatNumber(roi.ScenarioFactor(calc.Scenario), 2))
	fmt.Fprintf(tw, "Mode\t%s\n", calc.Mode)
	fmt.Fprintf(tw, "Fleet\t%d vehicles, %s%% adoption\n", in.VehicleCount, roi.FormatNumber(in.AdoptionPct, 0))
	fmt.Fprintln(tw, "\t")
	fmt.Fprintf(tw, "Fuel savings\t%s / year\n", money(r.FuelSavings))
	fmt.Fprintf(tw, "Accident savings\t%s / year\n", money(r.AccidentSavings))
	fmt.Fprintf(tw, "Insurance savings\t%s / year\n", money(r.InsuranceSavings))
	fmt.Fprintf(tw, "Total annual savings\t%s / year\n", money(r.TotalAnnualSavings))
	fmt.Fprintln(tw, "\t")
	fmt.Fprintf(tw, "Hardware\t%s\n", money(r.Costs.CapexHardware))
	fmt.Fprintf(tw, "One-off\t%s\n", money(r.Costs.OneOff))
	fmt.Fprintf(tw, "Subscription\t%s / year\n", money(r.Costs.OpexAnnual))
	fmt.Fprintf(tw, "Maintenance\t%s / year\n", money(r.Costs.MaintenanceAnnual))
	fmt.Fprintln(tw, "\t")
	fmt.Fprintf(tw, "Total savings (%dy)\t%s\n", years, money(r.TotalSavings))
	fmt.Fprintf(tw, "Total costs (%dy)\t%s\n", years, money(r.TotalCosts))
	fmt.Fprintf(tw, "ROI\t%s\n", roi.FormatPercent(r.ROIPct))
	fmt.Fprintf(tw, "Payback\t%s\n", roi.FormatPayback(r.Payback, in.TotalMonths()))
	return tw.Flush()
}
