package discover

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// Registry holds the configured discovery sources.
type Registry struct {
	Sources []SourceConfig `yaml:"sources"`
}

// Item count bounds applied when a source omits min_items/max_items.
const (
	defaultMinItems = 5
	defaultMaxItems = 14
)

// SourceConfig describes one discovery source.
type SourceConfig struct {
	Name     string `yaml:"name"`
	MinItems int    `yaml:"min_items,omitempty"`
	MaxItems int    `yaml:"max_items,omitempty"`
	Active   bool   `yaml:"active"`
}

// Bounds returns the inclusive per-run item count range for the source,
// filling in defaults for unset fields.
func (c SourceConfig) Bounds() (min, max int) {
	min, max = c.MinItems, c.MaxItems
	if min <= 0 {
		min = defaultMinItems
	}
	if max <= 0 {
		max = defaultMaxItems
	}
	if max < min {
		max = min
	}
	return min, max
}

// LoadRegistry reads the embedded source registry.
func LoadRegistry() (*Registry, error) {
	data, err := sourcesYAML.ReadFile("config/sources.yaml")
	if err != nil {
		return nil, fmt.Errorf("read sources registry: %w", err)
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse sources registry: %w", err)
	}
	return &reg, nil
}

// Lookup returns the config for the named source. Sources not in the
// registry, such as ad-hoc URL hosts, get a default config.
func (r *Registry) Lookup(name string) SourceConfig {
	for _, src := range r.Sources {
		if src.Name == name {
			return src
		}
	}
	return SourceConfig{Name: name}
}

// ActiveNames returns the names of active sources, in registry order.
func (r *Registry) ActiveNames() []string {
	var names []string
	for _, src := range r.Sources {
		if src.Active {
			names = append(names, src.Name)
		}
	}
	return names
}
