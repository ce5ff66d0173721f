// dslgen generates Kotlin builder extension functions for the mutable
// properties of a model library described by a manifest.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"dslgen/internal/config"
	"dslgen/internal/generator"
	"dslgen/internal/model"
	"dslgen/internal/parser"
)

// options holds the command line flags.
type options struct {
	manifestFile string
	templateFile string
	configFile   string
	outputDir    string
	outputPkg    string
	outputFile   string
	split        string
	types        string
	exclude      string
	dryRun       bool
	verbose      bool
	logLevel     string
	showHelp     bool
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("dslgen", flag.ContinueOnError)

	fs.StringVar(&o.manifestFile, "manifest", "", "Model manifest file, YAML or JSON (required)")
	fs.StringVar(&o.manifestFile, "m", "", "Model manifest file (shorthand)")

	fs.StringVar(&o.templateFile, "template", "", "Custom declaration template file")
	fs.StringVar(&o.templateFile, "t", "", "Custom declaration template file (shorthand)")

	fs.StringVar(&o.configFile, "config", "", "Config file (YAML/JSON)")
	fs.StringVar(&o.configFile, "c", "", "Config file (shorthand)")

	fs.StringVar(&o.outputDir, "output", "", "Output root directory (default: .)")
	fs.StringVar(&o.outputDir, "o", "", "Output root directory (shorthand)")

	fs.StringVar(&o.outputPkg, "package", "", "Package of the generated code")
	fs.StringVar(&o.outputPkg, "p", "", "Package of the generated code (shorthand)")

	fs.StringVar(&o.outputFile, "file", "", "Output file name (default: Builders.kt)")
	fs.StringVar(&o.outputFile, "f", "", "Output file name (shorthand)")

	fs.StringVar(&o.split, "split", "", "Split output: none or property")
	fs.StringVar(&o.types, "types", "", "Only generate for these owner types (comma-separated)")
	fs.StringVar(&o.types, "T", "", "Only generate for these owner types (shorthand)")
	fs.StringVar(&o.exclude, "exclude", "", "Exclude these owner types (comma-separated)")
	fs.StringVar(&o.exclude, "X", "", "Exclude these owner types (shorthand)")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Print generated code to stdout instead of writing files")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fs.BoolVar(&o.showHelp, "h", false, "Show help")
	fs.BoolVar(&o.showHelp, "help", false, "Show help")

	fs.Usage = func() { usage(fs) }
	return fs
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `dslgen - Kotlin builder DSL generator

Usage:
    dslgen -m <manifest.yaml> -p <package> [options]

Options:
`)
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
    # Generate all builders into one file
    dslgen -m model.yaml -p com.example.dsl -o src/main/kotlin

    # One file per property name
    dslgen -m model.yaml -p com.example.dsl -o src/main/kotlin --split property

    # Only builders on specific owners
    dslgen -m model.yaml -p com.example.dsl -T Pod,PodSpec --dry-run

    # Generate with custom config
    dslgen -m model.yaml -c dslgen.yaml

`)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var o options
	fs := newFlagSet(&o)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.showHelp {
		fs.Usage()
		return nil
	}

	if o.manifestFile == "" {
		return fmt.Errorf("manifest file is required (-m or --manifest)")
	}

	log, err := newLogger(&o)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := config.New()
	if o.configFile != "" {
		if err := cfg.LoadFile(o.configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Apply CLI overrides
	if o.outputDir != "" {
		cfg.Output.Dir = o.outputDir
	}
	if o.outputPkg != "" {
		cfg.Output.Package = o.outputPkg
	}
	if o.outputFile != "" {
		cfg.Output.File = o.outputFile
	}
	if o.split != "" {
		cfg.Options.Split = o.split
	}
	if o.templateFile != "" {
		cfg.Options.Template = o.templateFile
	}
	if o.types != "" {
		cfg.Options.IncludeTypes = parseCommaSeparated(o.types)
	}
	if o.exclude != "" {
		cfg.Options.ExcludeTypes = parseCommaSeparated(o.exclude)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Parse and resolve the manifest
	p := parser.New(parser.WithLogger(log.Named("parser")))
	manifest, err := p.ParseFile(o.manifestFile)
	if err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}
	bindings, err := p.Resolve(manifest, func(owner model.TypeDescriptor) bool {
		return cfg.ShouldIncludeType(owner.QualifiedName, owner.SimpleName)
	})
	if err != nil {
		return fmt.Errorf("resolving manifest: %w", err)
	}

	gen := generator.New(cfg, generator.WithLogger(log.Named("generator")))
	if cfg.Options.Template != "" {
		if err := gen.LoadTemplate(cfg.Options.Template); err != nil {
			return err
		}
	}

	batches := gen.Batches(bindings)
	if o.dryRun {
		return printBatches(stdout, gen, cfg.Output.Package, batches)
	}
	return gen.EmitBatches(cfg.Output.Dir, cfg.Output.Package, batches)
}

// newLogger builds the stderr logger. Every line carries the run id.
func newLogger(o *options) (hclog.Logger, error) {
	level := hclog.Warn
	if o.verbose {
		level = hclog.Debug
	}
	if o.logLevel != "" {
		level = hclog.LevelFromString(o.logLevel)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("unknown log level %q", o.logLevel)
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "dslgen",
		Level:  level,
		Output: os.Stderr,
	}).With("run", uuid.NewString()), nil
}

// printBatches writes every assembled unit to w, each headed by its file
// name. Nothing is printed unless all batches assemble.
func printBatches(w io.Writer, gen *generator.Generator, pkg string, batches []generator.Batch) error {
	var sb strings.Builder
	for _, batch := range batches {
		unit, err := gen.Assemble(pkg, batch.Bindings)
		if err != nil {
			return fmt.Errorf("generating %s: %w", batch.File, err)
		}
		fmt.Fprintf(&sb, "// ---- %s\n%s", batch.File, unit)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
