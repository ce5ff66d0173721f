// Package parser reads model manifests and resolves them into property bindings.
package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

// Parser parses manifest files and resolves their types.
type Parser struct {
	log hclog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used while resolving.
func WithLogger(log hclog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a new Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		log: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads a manifest from path. The codec is chosen by extension,
// falling back to YAML then JSON.
func (p *Parser) ParseFile(path string) (*model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	m, err := p.Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	p.log.Debug("parsed manifest", "path", path, "types", len(m.Types))
	return m, nil
}

// Parse decodes manifest data. ext selects the codec (".yaml", ".yml", ".json");
// anything else tries YAML then JSON.
func (p *Parser) Parse(data []byte, ext string) (*model.Manifest, error) {
	var m model.Manifest

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", dslerrors.ErrInvalidManifest, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", dslerrors.ErrInvalidManifest, err)
		}
	default:
		if err := yaml.Unmarshal(data, &m); err != nil {
			if err := json.Unmarshal(data, &m); err != nil {
				return nil, fmt.Errorf("%w: not YAML or JSON", dslerrors.ErrInvalidManifest)
			}
		}
	}

	return &m, nil
}
