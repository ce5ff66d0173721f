package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

func TestDestinationDir(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "io", "k8s", "dsl"), DestinationDir("out", "io.k8s.dsl"))
	assert.Equal(t, "out", DestinationDir("out", ""))
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()
	gen := New(testConfig())
	bindings := []model.PropertyBinding{
		{Owner: listOf, PropertyName: "items", ValueType: item},
		{Owner: pod, PropertyName: "spec", ValueType: podSpec},
	}

	require.NoError(t, gen.Emit(dir, "io.k8s.dsl", "Builders.kt", bindings))

	path := filepath.Join(dir, "io", "k8s", "dsl", "Builders.kt")
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	unit, err := gen.Assemble("io.k8s.dsl", bindings)
	require.NoError(t, err)
	assert.Equal(t, unit.String(), string(first))

	// Regeneration is byte-identical.
	require.NoError(t, gen.Emit(dir, "io.k8s.dsl", "Builders.kt", bindings))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmit_Overwrites(t *testing.T) {
	dir := t.TempDir()
	gen := New(testConfig())
	bindings := []model.PropertyBinding{
		{Owner: pod, PropertyName: "spec", ValueType: podSpec},
	}

	require.NoError(t, gen.Emit(dir, "dsl", "Builders.kt", bindings))
	require.NoError(t, gen.Emit(dir, "dsl", "Builders.kt", nil))

	got, err := os.ReadFile(filepath.Join(dir, "dsl", "Builders.kt"))
	require.NoError(t, err)
	assert.Equal(t, "// GENERATED\npackage dsl\n\n\n", string(got))
}

func TestEmit_UnresolvedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	bindings := []model.PropertyBinding{
		{Owner: pod, PropertyName: "spec", ValueType: podSpec},
		{Owner: pod, PropertyName: "items", ValueType: model.TypeDescriptor{}},
	}

	err := New(testConfig()).Emit(dir, "io.k8s.dsl", "Builders.kt", bindings)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dslerrors.ErrUnresolvableType))

	_, statErr := os.Stat(filepath.Join(dir, "io"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEmit_IOError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where a namespace directory is needed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "io"), nil, 0o644))

	err := New(testConfig()).Emit(dir, "io.k8s.dsl", "Builders.kt", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dslerrors.ErrWriteOutput))
	assert.Contains(t, err.Error(), string(dslerrors.ErrorFieldPath))
}

func TestEmitBatches_FailingBatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	batches := []Batch{
		{File: "spec.kt", Bindings: []model.PropertyBinding{{Owner: pod, PropertyName: "spec", ValueType: podSpec}}},
		{File: "status.kt", Bindings: []model.PropertyBinding{{Owner: pod, PropertyName: "status", ValueType: model.TypeDescriptor{QualifiedName: "a.Bad."}}}},
	}

	err := New(testConfig()).EmitBatches(dir, "io.k8s.dsl", batches)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dslerrors.ErrUnresolvableType))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEmitBatches(t *testing.T) {
	dir := t.TempDir()
	batches := []Batch{
		{File: "spec.kt", Bindings: []model.PropertyBinding{{Owner: pod, PropertyName: "spec", ValueType: podSpec}}},
		{File: "items.kt", Bindings: []model.PropertyBinding{{Owner: listOf, PropertyName: "items", ValueType: item}}},
	}

	require.NoError(t, New(testConfig()).EmitBatches(dir, "dsl", batches))

	for _, b := range batches {
		got, err := os.ReadFile(filepath.Join(dir, "dsl", b.File))
		require.NoError(t, err)
		assert.Contains(t, string(got), "`"+b.Bindings[0].PropertyName+"`.block()")
	}
}

func TestEmit_InvalidNamespace(t *testing.T) {
	for _, ns := range []string{"", "io..dsl", "dsl."} {
		dir := t.TempDir()

		err := New(testConfig()).Emit(dir, ns, "Builders.kt", nil)
		assert.True(t, errors.Is(err, dslerrors.ErrInvalidConfig), "namespace %q", ns)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "namespace %q", ns)
	}
}
