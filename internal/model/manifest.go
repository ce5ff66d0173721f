package model

// Manifest is the model description handed to dslgen by whatever
// introspects the model library.
type Manifest struct {
	Types []Class `yaml:"types" json:"types"`
}

// Class describes one named type of the model library.
type Class struct {
	Name           string     `yaml:"name" json:"name"`                                         // Qualified name
	SimpleName     string     `yaml:"simpleName,omitempty" json:"simpleName,omitempty"`         // Defaults to the last segment of Name
	TypeParameters []string   `yaml:"typeParameters,omitempty" json:"typeParameters,omitempty"` // Declared type parameter names
	Abstract       bool       `yaml:"abstract,omitempty" json:"abstract,omitempty"`             // Abstract classes and interfaces
	Properties     []Property `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Property describes one property of a Class.
type Property struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`                             // Qualified name of the declared type, or a type parameter name
	ReadOnly bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"` // Read-only properties get no builder
}

// Descriptor returns the resolved descriptor of c.
func (c *Class) Descriptor() TypeDescriptor {
	simple := c.SimpleName
	if simple == "" {
		simple = SimpleNameOf(c.Name)
	}
	return TypeDescriptor{
		QualifiedName:      c.Name,
		SimpleName:         simple,
		TypeParameterCount: uint(len(c.TypeParameters)),
		IsAbstract:         c.Abstract,
	}
}

// HasTypeParameter reports whether name is one of c's type parameters.
func (c *Class) HasTypeParameter(name string) bool {
	for _, p := range c.TypeParameters {
		if p == name {
			return true
		}
	}
	return false
}
