package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ygrebnov/errorc"

	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DestinationDir returns the directory holding files of namespace under dir,
// one path segment per namespace segment.
func DestinationDir(dir, namespace string) string {
	if namespace == "" {
		return dir
	}
	return filepath.Join(append([]string{dir}, strings.Split(namespace, ".")...)...)
}

// Emit renders bindings into one unit and writes it to name inside the
// namespace directory under dir, replacing any existing file. Nothing is
// written when a binding fails to render. After a write failure the file is
// in an unspecified state and must be regenerated.
func (g *Generator) Emit(dir, namespace, name string, bindings []model.PropertyBinding) error {
	return g.EmitBatches(dir, namespace, []Batch{{File: name, Bindings: bindings}})
}

// EmitBatches assembles every batch and only then writes one file per batch,
// so a batch that fails to render leaves no file of the run on disk.
func (g *Generator) EmitBatches(dir, namespace string, batches []Batch) error {
	units := make([]*model.GeneratedUnit, 0, len(batches))
	for _, batch := range batches {
		unit, err := g.Assemble(namespace, batch.Bindings)
		if err != nil {
			return fmt.Errorf("generating %s: %w", batch.File, err)
		}
		units = append(units, unit)
	}

	destDir := DestinationDir(dir, namespace)
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return writeError(destDir, err)
	}

	for i, unit := range units {
		path := filepath.Join(destDir, batches[i].File)
		if err := writeUnit(path, unit); err != nil {
			return err
		}
		g.log.Info("wrote builders", "path", path, "declarations", len(unit.Declarations), "references", len(unit.References))
	}
	return nil
}

// writeUnit creates or truncates path and writes the unit text in full.
func writeUnit(path string, unit *model.GeneratedUnit) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return writeError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = writeError(path, cerr)
		}
	}()

	if _, err := f.WriteString(unit.String()); err != nil {
		return writeError(path, err)
	}
	return nil
}

func writeError(path string, cause error) error {
	return fmt.Errorf("%w: %w",
		errorc.With(dslerrors.ErrWriteOutput, errorc.String(dslerrors.ErrorFieldPath, path)),
		cause,
	)
}
