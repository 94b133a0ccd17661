package cli

import (
	"encoding/json"
	"fmt"

	response "telematics_roi/internal/adapter/http/dto/response"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		in      inputFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an input set without calculating",
		Long: `Validate and coerce an input set. Exits non-zero when any input is invalid.

Examples:
  roi validate -f fleet.yaml
  roi validate --set vehicleCount=0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _, err := in.resolve(a)
			if err != nil {
				return err
			}
			uc, err := a.useCase()
			if err != nil {
				return err
			}

			v := uc.Validate(cmd.Context(), raw)
			if jsonOut {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(response.FromValidation(v)); err != nil {
					return err
				}
			} else if v.Valid {
				fmt.Fprintln(a.stdout, "inputs are valid")
				a.printAdvisories(v.Advisories)
			} else {
				renderFieldErrors(a.stderr, v.Errors)
			}

			if !v.Valid {
				return fmt.Errorf("%d invalid input(s)", len(v.Errors))
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output the validation result as JSON")
	return cmd
}
