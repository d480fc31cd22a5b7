// SPDX-License-Identifier: MIT

// Package errors provides the error taxonomy shared by every semicon package.
//
// It re-exports github.com/cockroachdb/errors (stack traces, wrapping, hints)
// and declares the three failure classes a caller is expected to branch on:
//
//   - ErrDomain: physically invalid input (negative spin, improper rotation,
//     band set without a required anchor band, non-finite correction).
//   - ErrConfiguration: unknown band, component, coordinate or data bank.
//   - ErrMissingParameter: a renormalization formula references a parameter
//     that the supplied set does not contain (see MissingParameterError).
//
// Packages wrap the sentinels with their own context, for example
//
//	return errors.Wrapf(errors.ErrDomain, "spin: s=%v is not a half-integer", s)
//
// and callers match with errors.Is. Every failure is reported synchronously;
// nothing is retried or downgraded to a warning.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing hints and details.
var (
	WithHint       = crdb.WithHint
	WithHintf      = crdb.WithHintf
	WithDetail     = crdb.WithDetail
	WithDetailf    = crdb.WithDetailf
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Error inspection.
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Taxonomy sentinels. Match with errors.Is after any amount of wrapping.
var (
	// ErrDomain marks physically invalid input.
	ErrDomain = New("semicon: domain error")

	// ErrConfiguration marks unknown names (bands, components, banks, coords)
	// detected at an API boundary before any computation.
	ErrConfiguration = New("semicon: configuration error")

	// ErrMissingParameter marks a renormalization formula dependency that is
	// absent from the supplied parameter set.
	ErrMissingParameter = New("semicon: missing parameter")
)

// MissingParameterError names the parameter whose bare/effective value could
// not be computed and the dependency the formula needed.
type MissingParameterError struct {
	Parameter  string // parameter being renormalized, e.g. "gamma_0"
	Dependency string // absent dependency, e.g. "Delta_0"
}

// Error implements error.
func (e *MissingParameterError) Error() string {
	return "cannot compute bare value of " + e.Parameter +
		": parameter " + e.Dependency + " is unknown"
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// NewMissingParameter builds a MissingParameterError with a stack trace and
// a hint pointing at the data bank.
func NewMissingParameter(parameter, dependency string) error {
	err := WithStack(&MissingParameterError{Parameter: parameter, Dependency: dependency})

	return WithHintf(err, "add %q to the data bank entry", dependency)
}
