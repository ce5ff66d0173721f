package parser

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	dslerrors "dslgen/internal/errors"
	"dslgen/internal/model"
)

// Filter decides whether bindings of an owner type are generated.
type Filter func(owner model.TypeDescriptor) bool

// Resolve turns the manifest into property bindings, one per writable
// property, in manifest order. Owners rejected by filter are skipped; a nil
// filter keeps every owner.
//
// Every owner and property type must name a type declared in the manifest.
// A property typed by one of its owner's type parameters, or by an unknown
// name, fails with ErrUnresolvableType and no bindings are returned.
func (p *Parser) Resolve(m *model.Manifest, filter Filter) ([]model.PropertyBinding, error) {
	classes := make(map[string]*model.Class, len(m.Types))
	for i := range m.Types {
		c := &m.Types[i]
		if c.Name == "" {
			return nil, errorc.With(dslerrors.ErrUnresolvableType,
				errorc.String(dslerrors.ErrorFieldOwner, fmt.Sprintf("#%d", i)),
			)
		}
		if c.Descriptor().SimpleName == "" {
			return nil, errorc.With(dslerrors.ErrUnresolvableType,
				errorc.String(dslerrors.ErrorFieldTypeName, c.Name),
				errorc.String(dslerrors.ErrorFieldReason, "type has no simple name"),
			)
		}
		if _, dup := classes[c.Name]; dup {
			return nil, fmt.Errorf("%w: type %s declared twice", dslerrors.ErrInvalidManifest, c.Name)
		}
		classes[c.Name] = c
	}

	var bindings []model.PropertyBinding
	for i := range m.Types {
		c := &m.Types[i]
		owner := c.Descriptor()
		if filter != nil && !filter(owner) {
			p.log.Trace("skipping owner", "type", owner.QualifiedName)
			continue
		}

		for _, prop := range c.Properties {
			if prop.ReadOnly {
				continue
			}
			value, err := resolveProperty(classes, c, prop)
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, model.PropertyBinding{
				Owner:        owner,
				PropertyName: prop.Name,
				ValueType:    value,
			})
		}
	}

	p.log.Debug("resolved bindings", "count", len(bindings))
	return bindings, nil
}

// resolveProperty resolves the value type of prop declared on owner.
func resolveProperty(classes map[string]*model.Class, owner *model.Class, prop model.Property) (model.TypeDescriptor, error) {
	unresolvable := func(reason string) error {
		return errorc.With(dslerrors.ErrUnresolvableType,
			errorc.String(dslerrors.ErrorFieldOwner, owner.Name),
			errorc.String(dslerrors.ErrorFieldProperty, prop.Name),
			errorc.String(dslerrors.ErrorFieldTypeName, prop.Type),
			errorc.String(dslerrors.ErrorFieldReason, reason),
		)
	}

	switch {
	case prop.Name == "":
		return model.TypeDescriptor{}, unresolvable("property has no name")
	case prop.Type == "":
		return model.TypeDescriptor{}, unresolvable("property has no type")
	case owner.HasTypeParameter(prop.Type):
		return model.TypeDescriptor{}, unresolvable("type parameter of owner")
	}

	c, ok := classes[prop.Type]
	if !ok {
		return model.TypeDescriptor{}, unresolvable("not declared in manifest")
	}
	return c.Descriptor(), nil
}
