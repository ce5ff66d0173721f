package generator

import (
	"sort"

	"dslgen/internal/model"
)

// CollectReferences returns the distinct qualified names of every owner and
// value type in bindings.
func CollectReferences(bindings []model.PropertyBinding) map[string]struct{} {
	refs := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		refs[b.Owner.QualifiedName] = struct{}{}
		refs[b.ValueType.QualifiedName] = struct{}{}
	}
	return refs
}

// sortedReferences returns the keys of refs in lexicographic order.
func sortedReferences(refs map[string]struct{}) []string {
	sorted := make([]string, 0, len(refs))
	for ref := range refs {
		sorted = append(sorted, ref)
	}
	sort.Strings(sorted)
	return sorted
}
