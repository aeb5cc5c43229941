package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "liveaudit/internal/model"
)

// ConfigFileName is the project configuration file looked up from the scan
// root upwards.
const ConfigFileName = ".liveaudit.yml"

// Config is the merged tool configuration: built-in defaults, overlaid by
// the project file, overlaid by CLI flags (the flag overlay happens in cmd).
type Config struct {
	Strict   bool                    `yaml:"strict"`
	Parallel int                     `yaml:"parallel"`
	Only     []string                `yaml:"only"`
	Exclude  []string                `yaml:"exclude"`
	Rules    map[string]m.RuleConfig `yaml:"rules"`
}

// DefaultConfig returns the built-in defaults: every rule enabled with its
// own defaults, single-threaded, lenient.
func DefaultConfig() Config {
	return Config{
		Parallel: 1,
		Rules:    map[string]m.RuleConfig{},
	}
}

// RuleConfig returns the option map for a rule, never nil.
func (c Config) RuleConfig(name string) m.RuleConfig {
	if cfg, ok := c.Rules[name]; ok {
		return cfg
	}

	return m.RuleConfig{}
}

// RuleEnabled honors both the "only" filter and a per-rule "enabled: false"
// switch.
func (c Config) RuleEnabled(name string) bool {
	if len(c.Only) > 0 {
		found := false

		for _, only := range c.Only {
			if only == name {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	if cfg, ok := c.Rules[name]; ok {
		if raw, ok := cfg["enabled"]; ok {
			if enabled, ok := raw.(bool); ok {
				return enabled
			}
		}
	}

	return true
}

// LoadConfig reads the YAML file at path and merges it over the defaults.
// An empty path means "search upwards from startDir"; a missing file is not
// an error, the defaults apply.
func LoadConfig(fs SourceFS, path string, startDir string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		found, err := fs.FindConfigFile(m.Path(startDir), ConfigFileName)
		if err != nil {
			return cfg, nil
		}

		path = string(found)
	}

	raw, err := fs.ReadFile(m.Path(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}

	if cfg.Rules == nil {
		cfg.Rules = map[string]m.RuleConfig{}
	}

	return cfg, nil
}
