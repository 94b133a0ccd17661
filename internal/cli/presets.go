package cli

import (
	"fmt"
	"text/tabwriter"

	"telematics_roi/internal/domain/roi"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List example presets, or print one as an input file",
		Long: `Without arguments, list the built-in presets. With a name, print the
preset merged over the defaults as YAML, ready for 'roi calculate -f'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, err := a.catalog.Get(args[0])
				if err != nil {
					return err
				}
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err := enc.Encode(roi.MergeDefaults(p.Inputs)); err != nil {
					return err
				}
				return enc.Close()
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSCENARIO\tTITLE")
			for _, p := range a.catalog.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Scenario, p.Title)
			}
			return tw.Flush()
		},
	}
	return cmd
}
