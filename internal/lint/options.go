package lint

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls which rules run and what counts as a known kind.
type Options struct {
	// Disable lists rule names that should not run.
	Disable []string `yaml:"disable"`
	// KnownKinds overrides domain.KnownKinds when non-empty.
	KnownKinds []string `yaml:"known_kinds"`
}

// LoadOptions reads lint options from a YAML file.
// An empty path or a missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	var opts Options
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read lint config: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse lint config yaml: %w", err)
	}

	for _, name := range opts.Disable {
		if !IsRule(name) {
			return opts, fmt.Errorf("unknown lint rule %q in %s", name, path)
		}
	}

	return opts, nil
}

func (o Options) disabled(name string) bool {
	for _, d := range o.Disable {
		if d == name {
			return true
		}
	}
	return false
}
