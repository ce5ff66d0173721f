// Package model defines the resolved type metadata consumed by the generator
// and the manifest format it is resolved from.
package model

import "strings"

// TypeDescriptor describes a resolved, concrete named type.
// Identity is QualifiedName.
type TypeDescriptor struct {
	QualifiedName      string // Fully qualified name (e.g., "io.k8s.api.core.PodSpec")
	SimpleName         string // Name used in declarations (e.g., "PodSpec")
	TypeParameterCount uint   // Generic arity
	IsAbstract         bool   // Whether the type cannot be default-constructed
}

// PropertyBinding is one settable property on Owner whose value is of ValueType.
type PropertyBinding struct {
	Owner        TypeDescriptor
	PropertyName string
	ValueType    TypeDescriptor
}

// GeneratedUnit is the assembled output artifact.
type GeneratedUnit struct {
	Marker       string   // First-line generated-file marker
	Namespace    string   // Package declared by the unit
	References   []string // Sorted, deduplicated qualified names
	Declarations []string // Rendered declarations in binding order
}

// String returns the unit's full text: marker, namespace declaration, blank
// line, reference block, blank line, declarations separated by blank lines.
func (u *GeneratedUnit) String() string {
	var b strings.Builder
	b.WriteString(u.Marker)
	b.WriteString("\n")
	b.WriteString("package ")
	b.WriteString(u.Namespace)
	b.WriteString("\n\n")
	for _, ref := range u.References {
		b.WriteString("import ")
		b.WriteString(ref)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for i, decl := range u.Declarations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl)
	}
	return b.String()
}

// SimpleNameOf returns the last dot-separated segment of a qualified name.
func SimpleNameOf(qualifiedName string) string {
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		return qualifiedName[i+1:]
	}
	return qualifiedName
}
