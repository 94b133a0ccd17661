package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"telematics_roi/internal/domain/entities"
)

//go:embed presets.yaml
var builtin []byte

var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named example input set. Inputs is partial and keyed by schema
// key; callers merge it over the defaults before validating.
type Preset struct {
	Name        string            `yaml:"name" json:"name"`
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description" json:"description"`
	Scenario    entities.Scenario `yaml:"scenario" json:"scenario"`
	Inputs      map[string]any    `yaml:"inputs" json:"inputs"`
}

type file struct {
	Presets []Preset `yaml:"presets"`
}

// Catalog is an ordered, read-only set of presets.
type Catalog struct {
	presets []Preset
	byName  map[string]int
}

// Builtin returns the presets compiled into the binary.
func Builtin() *Catalog {
	c, err := Parse(bytes.NewReader(builtin))
	if err != nil {
		panic(fmt.Sprintf("invalid builtin presets: %v", err))
	}
	return c
}

// LoadFile parses a presets YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a presets document. Names must be unique and non-empty.
func Parse(r io.Reader) (*Catalog, error) {
	var doc file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	c := &Catalog{byName: make(map[string]int, len(doc.Presets))}
	for _, p := range doc.Presets {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, errors.New("preset without name")
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		if p.Scenario == "" {
			p.Scenario = entities.ScenarioBase
		}
		c.byName[p.Name] = len(c.presets)
		c.presets = append(c.presets, p)
	}
	return c, nil
}

// List returns the presets in file order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Get returns the preset named name.
func (c *Catalog) Get(name string) (Preset, error) {
	i, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return c.presets[i], nil
}
