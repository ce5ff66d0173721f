package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dslerrors "dslgen/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "dslgen.yaml", `
output:
  package: io.k8s.dsl
options:
  split: property
  excludeTypes: [PodStatus]
`)

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "io.k8s.dsl", cfg.Output.Package)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "Builders.kt", cfg.Output.File)
	assert.Equal(t, SplitProperty, cfg.Options.Split)
	assert.Equal(t, "// GENERATED", cfg.Options.Marker)
	assert.Equal(t, []string{"PodStatus"}, cfg.Options.ExcludeTypes)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "dslgen.json", `{"output":{"dir":"gen","package":"dsl","file":"Dsl.kt"},"options":{"indent":"\t"}}`)

	cfg := New()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, Output{Dir: "gen", Package: "dsl", File: "Dsl.kt"}, cfg.Output)
	assert.Equal(t, "\t", cfg.Options.Indent)
	assert.Equal(t, SplitNone, cfg.Options.Split)
}

func TestLoadFile_Errors(t *testing.T) {
	assert.Error(t, New().LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, New().LoadFile(writeFile(t, "bad.json", "{")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		option string
	}{
		{name: "missing package", mutate: func(c *Config) { c.Output.Package = "" }, option: "output.package"},
		{name: "empty package segment", mutate: func(c *Config) { c.Output.Package = "io..dsl" }, option: "output.package"},
		{name: "trailing package dot", mutate: func(c *Config) { c.Output.Package = "io.dsl." }, option: "output.package"},
		{name: "file with separator", mutate: func(c *Config) { c.Output.File = "a/b.kt" }, option: "output.file"},
		{name: "unknown split", mutate: func(c *Config) { c.Options.Split = "owner" }, option: "options.split"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Output.Package = "dsl"
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, dslerrors.ErrInvalidConfig))
			assert.Contains(t, err.Error(), string(dslerrors.ErrorFieldOption)+": "+tt.option)
		})
	}
}

func TestShouldIncludeType(t *testing.T) {
	cfg := New()
	assert.True(t, cfg.ShouldIncludeType("io.k8s.core.Pod", "Pod"))

	cfg.Options.IncludeTypes = []string{"Pod", "io.k8s.core.PodSpec"}
	assert.True(t, cfg.ShouldIncludeType("io.k8s.core.Pod", "Pod"))
	assert.True(t, cfg.ShouldIncludeType("io.k8s.core.PodSpec", "PodSpec"))
	assert.False(t, cfg.ShouldIncludeType("io.k8s.core.Node", "Node"))

	cfg.Options.ExcludeTypes = []string{"io.k8s.core.Pod"}
	assert.False(t, cfg.ShouldIncludeType("io.k8s.core.Pod", "Pod"))
}

func TestValidPackage(t *testing.T) {
	assert.True(t, ValidPackage("io.k8s.dsl"))
	assert.True(t, ValidPackage("dsl"))
	assert.False(t, ValidPackage(""))
	assert.False(t, ValidPackage(".dsl"))
	assert.False(t, ValidPackage("io..dsl"))
}
