package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across lad.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Build session
	FieldBuildID = "build_id"

	// LAD entities
	FieldTypeID     = "type_id"
	FieldFunctionID = "function_id"
	FieldGlobal     = "global"
	FieldPrimitive  = "primitive"
	FieldPath       = "path"

	// Counts
	FieldTypes      = "types"
	FieldFunctions  = "functions"
	FieldPrimitives = "primitives"
	FieldGlobals    = "globals"
	FieldExcluded   = "excluded"
	FieldWarnings   = "warnings"
	FieldCount      = "count"

	// Files
	FieldFile    = "file"
	FieldFormat  = "format"
	FieldVersion = "version"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	b := builder.New(reg, builder.WithLogger(logger.ComponentLogger("builder")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	buildLogger := logger.ChildLogger(base, logger.FieldBuildID, id)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
