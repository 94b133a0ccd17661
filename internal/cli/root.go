package cli

import (
	"io"
	"os"

	"telematics_roi/internal/infrastructure/presets"
	"telematics_roi/internal/usecase"
	"telematics_roi/pkg/logger"

	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	catalog  *presets.Catalog
	stdout   io.Writer
	stderr   io.Writer
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdout, os.Stderr)
}

func NewRootCommandWithIO(out, errOut io.Writer) *cobra.Command {
	return newRootCommand(out, errOut)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		catalog: presets.Builtin(),
		stdout:  out,
		stderr:  errOut,
	}

	cmd := &cobra.Command{
		Use:           "roi",
		Short:         "Fleet telematics ROI estimator",
		Long:          "roi validates fleet inputs and estimates telematics savings, payback and ROI without starting the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "error", "log level written to stderr (debug, info, warn, error)")

	cmd.AddCommand(
		newCalculateCmd(a),
		newValidateCmd(a),
		newPresetsCmd(a),
	)
	return cmd
}

// useCase builds a repository-less estimator; the CLI never saves estimates.
func (a *app) useCase() (*usecase.EstimateUseCase, error) {
	l, err := logger.New(a.logLevel, "console")
	if err != nil {
		return nil, err
	}
	return usecase.NewEstimateUseCase(nil, l), nil
}
