// Package errors provides error handling for lad.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := decode(); err != nil {
//	    return errors.Wrap(err, "failed to decode LAD file")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'ladgen build' to regenerate")
//
// The builder itself never returns errors; this package is used at the
// boundaries (codec, configuration, CLI, source doc loading).
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for use across lad.
// Use these with errors.Is() and wrap them with errors.Wrap() to add context.
var (
	// ErrUnknownFormat indicates a serialization format that lad cannot read or write
	ErrUnknownFormat = New("unknown format")

	// ErrInvalidVersion indicates a version stamp that is not a semantic version
	ErrInvalidVersion = New("invalid version")

	// ErrOutOfDate indicates a LAD file on disk differs from a fresh build
	ErrOutOfDate = New("LAD file out of date")

	// ErrNotFound indicates the requested file or package does not exist
	ErrNotFound = New("not found")
)

// IsUnknownFormatError checks if an error is or wraps ErrUnknownFormat
func IsUnknownFormatError(err error) bool {
	return err != nil && Is(err, ErrUnknownFormat)
}

// IsOutOfDateError checks if an error is or wraps ErrOutOfDate
func IsOutOfDateError(err error) bool {
	return err != nil && Is(err, ErrOutOfDate)
}

// NewUnknownFormatError creates an unknown-format error with a formatted message
func NewUnknownFormatError(format string, args ...interface{}) error {
	return Wrap(ErrUnknownFormat, Newf(format, args...).Error())
}

// NewInvalidVersionError creates an invalid-version error with a formatted message
func NewInvalidVersionError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidVersion, Newf(format, args...).Error())
}
