// Package config provides configuration handling for dslgen.
package config

// Split modes.
const (
	SplitNone     = "none"     // One file holding every declaration
	SplitProperty = "property" // One file per property name
)

// DefaultOutput returns the default output location.
// Package has no default and must be configured.
func DefaultOutput() Output {
	return Output{
		Dir:  ".",
		File: "Builders.kt",
	}
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Marker: "// GENERATED",
		Indent: "  ",
		Split:  SplitNone,
	}
}
