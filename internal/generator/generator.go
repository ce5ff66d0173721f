// Package generator renders Kotlin builder extension functions from
// resolved property bindings and writes them out.
package generator

import (
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
	"github.com/ygrebnov/errorc"

	"dslgen/internal/config"
	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

// Generator renders and emits builder declarations.
type Generator struct {
	config      *config.Config
	declaration *template.Template
	log         hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(log hclog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New creates a new Generator using the builtin declaration template.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		config:      cfg,
		declaration: template.Must(template.New("declaration").Funcs(templateFuncs()).Parse(declarationTemplate)),
		log:         hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoadTemplate replaces the declaration template with one loaded from file.
func (g *Generator) LoadTemplate(path string) error {
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(templateFuncs()).
		ParseFiles(path)
	if err != nil {
		return fmt.Errorf("%w: %w", dslerrors.ErrInvalidTemplate, err)
	}
	g.declaration = tmpl
	g.log.Debug("loaded declaration template", "path", path)
	return nil
}

// Assemble renders bindings into a unit declaring namespace. Every binding
// is validated and rendered before the unit is returned, so a failure leaves
// nothing half-built.
func (g *Generator) Assemble(namespace string, bindings []model.PropertyBinding) (*model.GeneratedUnit, error) {
	if g.log.IsTrace() {
		g.log.Trace("assembling unit", "namespace", namespace, "bindings", spew.Sdump(bindings))
	}

	if !config.ValidPackage(namespace) {
		return nil, errorc.With(dslerrors.ErrInvalidConfig,
			errorc.String(dslerrors.ErrorFieldOption, "output.package"),
			errorc.String(dslerrors.ErrorFieldValue, namespace),
		)
	}

	unit := &model.GeneratedUnit{
		Marker:       g.config.Options.Marker,
		Namespace:    namespace,
		References:   sortedReferences(CollectReferences(bindings)),
		Declarations: make([]string, 0, len(bindings)),
	}
	for _, b := range bindings {
		decl, err := g.Render(b)
		if err != nil {
			return nil, err
		}
		unit.Declarations = append(unit.Declarations, decl)
	}
	return unit, nil
}

// Batch is the set of bindings destined for one output file.
type Batch struct {
	File     string
	Bindings []model.PropertyBinding
}

// Batches groups bindings into output files according to the split mode.
// With split by property, bindings sharing a property name land in one file
// named after it; files are ordered by first appearance.
func (g *Generator) Batches(bindings []model.PropertyBinding) []Batch {
	if g.config.Options.Split != config.SplitProperty {
		return []Batch{{File: g.config.Output.File, Bindings: bindings}}
	}

	ext := filepath.Ext(g.config.Output.File)
	index := make(map[string]int)
	var batches []Batch
	for _, b := range bindings {
		i, ok := index[b.PropertyName]
		if !ok {
			i = len(batches)
			index[b.PropertyName] = i
			batches = append(batches, Batch{File: b.PropertyName + ext})
		}
		batches[i].Bindings = append(batches[i].Bindings, b)
	}
	return batches
}
