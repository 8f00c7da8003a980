// Package errors provides error handling for heronet.
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
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
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
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the superhero network store.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates the requested hero does not exist in the network
	ErrNotFound = New("hero not found")

	// ErrDuplicateNode indicates an attempt to add a hero id that already exists
	ErrDuplicateNode = New("hero already exists")

	// ErrUnknownNode indicates a friendship referenced a hero id that does not exist
	ErrUnknownNode = New("unknown hero")

	// ErrSelfLoop indicates a friendship from a hero to itself
	ErrSelfLoop = New("hero cannot befriend itself")

	// ErrDuplicateEdge indicates the friendship is already recorded
	ErrDuplicateEdge = New("friendship already exists")
)

// IsNotFound checks if an error is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsDuplicateNode checks if an error is or wraps ErrDuplicateNode
func IsDuplicateNode(err error) bool {
	return err != nil && Is(err, ErrDuplicateNode)
}

// IsUnknownNode checks if an error is or wraps ErrUnknownNode
func IsUnknownNode(err error) bool {
	return err != nil && Is(err, ErrUnknownNode)
}

// IsSelfLoop checks if an error is or wraps ErrSelfLoop
func IsSelfLoop(err error) bool {
	return err != nil && Is(err, ErrSelfLoop)
}

// IsDuplicateEdge checks if an error is or wraps ErrDuplicateEdge
func IsDuplicateEdge(err error) bool {
	return err != nil && Is(err, ErrDuplicateEdge)
}
