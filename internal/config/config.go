package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ygrebnov/errorc"
	"gopkg.in/yaml.v3"

	dslerrors "dslgen/internal/errors"
)

// Config represents the complete configuration.
type Config struct {
	Output  Output  `yaml:"output" json:"output"`
	Options Options `yaml:"options" json:"options"`
}

// Output describes where the generated unit goes.
type Output struct {
	Dir     string `yaml:"dir" json:"dir"`
	Package string `yaml:"package" json:"package"`
	File    string `yaml:"file" json:"file"`
}

// Options represents generation options.
type Options struct {
	Marker       string   `yaml:"marker" json:"marker"`
	Indent       string   `yaml:"indent" json:"indent"`
	Split        string   `yaml:"split" json:"split"`
	Template     string   `yaml:"template" json:"template"`
	IncludeTypes []string `yaml:"includeTypes" json:"includeTypes"`
	ExcludeTypes []string `yaml:"excludeTypes" json:"excludeTypes"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output:  DefaultOutput(),
		Options: DefaultOptions(),
	}
}

// LoadFile loads configuration from a file (YAML or JSON based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)

	return nil
}

// merge merges the loaded config into the current config.
// Empty values in loaded keep the current ones.
func (c *Config) merge(loaded *Config) {
	if loaded.Output.Dir != "" {
		c.Output.Dir = loaded.Output.Dir
	}
	if loaded.Output.Package != "" {
		c.Output.Package = loaded.Output.Package
	}
	if loaded.Output.File != "" {
		c.Output.File = loaded.Output.File
	}

	if loaded.Options.Marker != "" {
		c.Options.Marker = loaded.Options.Marker
	}
	if loaded.Options.Indent != "" {
		c.Options.Indent = loaded.Options.Indent
	}
	if loaded.Options.Split != "" {
		c.Options.Split = loaded.Options.Split
	}
	if loaded.Options.Template != "" {
		c.Options.Template = loaded.Options.Template
	}
	if loaded.Options.IncludeTypes != nil {
		c.Options.IncludeTypes = loaded.Options.IncludeTypes
	}
	if loaded.Options.ExcludeTypes != nil {
		c.Options.ExcludeTypes = loaded.Options.ExcludeTypes
	}
}

// Validate checks the settings generation cannot run without.
func (c *Config) Validate() error {
	if !ValidPackage(c.Output.Package) {
		return errorc.With(dslerrors.ErrInvalidConfig,
			errorc.String(dslerrors.ErrorFieldOption, "output.package"),
			errorc.String(dslerrors.ErrorFieldValue, c.Output.Package),
		)
	}
	if c.Output.File == "" || strings.ContainsAny(c.Output.File, `/\`) {
		return errorc.With(dslerrors.ErrInvalidConfig,
			errorc.String(dslerrors.ErrorFieldOption, "output.file"),
			errorc.String(dslerrors.ErrorFieldValue, c.Output.File),
		)
	}
	switch c.Options.Split {
	case SplitNone, SplitProperty:
	default:
		return errorc.With(dslerrors.ErrInvalidConfig,
			errorc.String(dslerrors.ErrorFieldOption, "options.split"),
			errorc.String(dslerrors.ErrorFieldValue, c.Options.Split),
		)
	}
	return nil
}

// ValidPackage reports whether pkg is a non-empty dotted name without empty segments.
func ValidPackage(pkg string) bool {
	if pkg == "" {
		return false
	}
	for _, segment := range strings.Split(pkg, ".") {
		if segment == "" {
			return false
		}
	}
	return true
}

// ShouldIncludeType checks if an owner type should be included based on config.
// Lists may hold qualified or simple names.
func (c *Config) ShouldIncludeType(qualifiedName, simpleName string) bool {
	matches := func(list []string) bool {
		for _, t := range list {
			if t == qualifiedName || t == simpleName {
				return true
			}
		}
		return false
	}

	// Check include list (if specified, type must be in it)
	if len(c.Options.IncludeTypes) > 0 && !matches(c.Options.IncludeTypes) {
		return false
	}

	return !matches(c.Options.ExcludeTypes)
}
