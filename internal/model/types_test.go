package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleNameOf(t *testing.T) {
	assert.Equal(t, "PodSpec", SimpleNameOf("io.k8s.core.PodSpec"))
	assert.Equal(t, "Pod", SimpleNameOf("Pod"))
}

func TestClassDescriptor(t *testing.T) {
	c := Class{Name: "a.b.Box", TypeParameters: []string{"K", "V"}, Abstract: true}
	assert.Equal(t, TypeDescriptor{
		QualifiedName:      "a.b.Box",
		SimpleName:         "Box",
		TypeParameterCount: 2,
		IsAbstract:         true,
	}, c.Descriptor())

	c.SimpleName = "Outer.Box"
	assert.Equal(t, "Outer.Box", c.Descriptor().SimpleName)
	assert.True(t, c.HasTypeParameter("V"))
	assert.False(t, c.HasTypeParameter("T"))
}

func TestGeneratedUnitString(t *testing.T) {
	u := &GeneratedUnit{
		Marker:       "// GENERATED",
		Namespace:    "dsl",
		References:   []string{"a.A", "a.B"},
		Declarations: []string{"fun A.`b`() {}\n", "fun B.`a`() {}\n"},
	}
	assert.Equal(t,
		"// GENERATED\npackage dsl\n\nimport a.A\nimport a.B\n\nfun A.`b`() {}\n\nfun B.`a`() {}\n",
		u.String(),
	)
}
