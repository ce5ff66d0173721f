package generator

import (
	"fmt"
	"strings"

	"github.com/ygrebnov/errorc"

	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

// declarationData represents data passed to the declaration template.
type declarationData struct {
	Binding    model.PropertyBinding // The binding being rendered
	Generics   []string              // Synthesized owner type parameters, T1..Tn
	Receiver   string                // Owner simple name applied to Generics
	Property   string                // Property name, unquoted
	BlockType  string                // Value simple name applied to star projections
	ValueType  string                // Value simple name
	Initialize bool                  // Whether an absent value is default-constructed
	Indent     string                // One indentation level
}

// Render produces the builder declaration for one binding.
func (g *Generator) Render(b model.PropertyBinding) (string, error) {
	if err := validateBinding(b); err != nil {
		return "", err
	}

	generics := typeParameters(b.Owner.TypeParameterCount)
	data := &declarationData{
		Binding:    b,
		Generics:   generics,
		Receiver:   b.Owner.SimpleName + typeArguments(generics),
		Property:   b.PropertyName,
		BlockType:  b.ValueType.SimpleName + typeArguments(wildcards(b.ValueType.TypeParameterCount)),
		ValueType:  b.ValueType.SimpleName,
		Initialize: !b.ValueType.IsAbstract,
		Indent:     g.config.Options.Indent,
	}

	var sb strings.Builder
	if err := g.declaration.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering %s.%s: %w", b.Owner.QualifiedName, b.PropertyName, err)
	}
	return sb.String(), nil
}

// validateBinding reports bindings whose types never resolved.
func validateBinding(b model.PropertyBinding) error {
	if b.PropertyName == "" {
		return errorc.With(dslerrors.ErrInvalidBinding,
			errorc.String(dslerrors.ErrorFieldOwner, b.Owner.QualifiedName),
		)
	}
	for _, t := range []model.TypeDescriptor{b.Owner, b.ValueType} {
		if t.QualifiedName == "" || t.SimpleName == "" {
			return errorc.With(dslerrors.ErrUnresolvableType,
				errorc.String(dslerrors.ErrorFieldOwner, b.Owner.QualifiedName),
				errorc.String(dslerrors.ErrorFieldProperty, b.PropertyName),
				errorc.String(dslerrors.ErrorFieldTypeName, t.QualifiedName),
			)
		}
	}
	return nil
}
