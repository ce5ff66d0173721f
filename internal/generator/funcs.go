package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// Declaration helpers
		"generics": genericsPrefix,
		"typeArgs": typeArguments,
		"quote":    quoteName,

		// String manipulation
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"join":  strings.Join,
	}
}

// typeParameters synthesizes n generic parameter names T1..Tn.
func typeParameters(n uint) []string {
	params := make([]string, 0, n)
	for i := uint(1); i <= n; i++ {
		params = append(params, fmt.Sprintf("T%d", i))
	}
	return params
}

// wildcards returns n star projections.
func wildcards(n uint) []string {
	args := make([]string, n)
	for i := range args {
		args[i] = "*"
	}
	return args
}

// typeArguments renders "<A, B>", or nothing for an empty list.
func typeArguments(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return "<" + strings.Join(args, ", ") + ">"
}

// genericsPrefix renders a declaration's generic parameter list followed by
// a space, or nothing when there are no parameters.
func genericsPrefix(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return typeArguments(params) + " "
}

// quoteName wraps an identifier in backticks so keywords stay legal.
func quoteName(name string) string {
	return "`" + name + "`"
}
