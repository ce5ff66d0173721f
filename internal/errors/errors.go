// Package errors defines the sentinel errors and structured error keys of dslgen.
package errors

import "github.com/ygrebnov/errorc"

// Namespace prefixes every error message and error field key.
const Namespace = "dslgen"

var namespace = errorc.Namespace(Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrUnresolvableType = namespace.NewError("unresolvable type")
	ErrInvalidBinding   = namespace.NewError("invalid property binding")
	ErrInvalidManifest  = namespace.NewError("invalid manifest")
	ErrInvalidConfig    = namespace.NewError("invalid config")
	ErrInvalidTemplate  = namespace.NewError("invalid template")
	ErrWriteOutput      = namespace.NewError("cannot write output")
)

var newKey = errorc.KeyFactory(Namespace)

const (
	keySegmentType   = "type"
	keySegmentOutput = "output"
	keySegmentConfig = "config"
)

// Structured error field keys.
var (
	ErrorFieldOwner    = newKey("owner", keySegmentType)    // dslgen.type.owner
	ErrorFieldProperty = newKey("property", keySegmentType) // dslgen.type.property
	ErrorFieldTypeName = newKey("name", keySegmentType)     // dslgen.type.name
	ErrorFieldReason   = newKey("reason", keySegmentType)   // dslgen.type.reason
)

var (
	ErrorFieldPath = newKey("path", keySegmentOutput) // dslgen.output.path
)

var (
	ErrorFieldOption = newKey("option", keySegmentConfig) // dslgen.config.option
	ErrorFieldValue  = newKey("value", keySegmentConfig)  // dslgen.config.value
)
