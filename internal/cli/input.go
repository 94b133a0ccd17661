package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"telematics_roi/internal/domain/roi"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// inputFlags are shared by every command that takes an input set. Sources
// are layered: defaults, then --preset, then --file, then each --set.
type inputFlags struct {
	preset   string
	file     string
	sets     []string
	scenario string
	mode     string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "start from a named preset (see 'roi presets')")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML or JSON file of inputs keyed by field name")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "override one input, e.g. --set vehicleCount=120 (repeatable)")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "conservative, base or aggressive (default: preset scenario or base)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "timeline or straight_line (default timeline)")
}

// resolve returns the raw record and the scenario to use.
func (f *inputFlags) resolve(a *app) (map[string]any, string, error) {
	raw := map[string]any{}
	scenario := f.scenario

	if f.preset != "" {
		p, err := a.catalog.Get(f.preset)
		if err != nil {
			return nil, "", err
		}
		raw = roi.MergeRaw(raw, p.Inputs)
		if scenario == "" {
			scenario = string(p.Scenario)
		}
	}

	if f.file != "" {
		fromFile, err := readInputFile(f.file)
		if err != nil {
			return nil, "", err
		}
		raw = roi.MergeRaw(raw, fromFile)
	}

	for _, kv := range f.sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, "", fmt.Errorf("invalid --set %q: want key=value", kv)
		}
		if _, known := roi.LookupField(key); !known {
			return nil, "", fmt.Errorf("unknown input %q (known: %s)", key, strings.Join(fieldKeys(), ", "))
		}
		raw[key] = strings.TrimSpace(value)
	}

	return roi.MergeDefaults(raw), scenario, nil
}

func readInputFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for key := range raw {
		if _, known := roi.LookupField(key); !known {
			return nil, fmt.Errorf("%s: unknown input %q", path, key)
		}
	}
	return raw, nil
}

func fieldKeys() []string {
	fields := roi.Schema()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	sort.Strings(keys)
	return keys
}
