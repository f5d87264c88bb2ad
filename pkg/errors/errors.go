/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package errors defines the terminal error kinds raised during argument
// validation. Every validation failure is one of four kinds:
//
//   - InvalidArgumentValueError: a value is present but malformed,
//     inconsistent with another field, or refers to a resource that does
//     not exist.
//   - RequiredArgumentMissingError: a field that another field makes
//     mandatory is absent.
//   - MutuallyExclusiveArgumentError: two fields that must not coexist are
//     both set.
//   - InternalError: an unexpected failure from a remote dependency.
//
// Callers discriminate between kinds with errors.As. Errors carrying a
// cause expose it through Unwrap.
package errors

import "fmt"

// InvalidArgumentValueError reports a flag whose value is present but fails
// a format, range, consistency or lookup check.
type InvalidArgumentValueError struct {
	Message string
	Err     error
}

func (e *InvalidArgumentValueError) Error() string { return e.Message }

func (e *InvalidArgumentValueError) Unwrap() error { return e.Err }

// InvalidArgumentValuef returns an InvalidArgumentValueError with a
// formatted message.
func InvalidArgumentValuef(format string, a ...any) *InvalidArgumentValueError {
	return &InvalidArgumentValueError{Message: fmt.Sprintf(format, a...)}
}

// WrapInvalidArgumentValue returns an InvalidArgumentValueError with a
// formatted message and the given cause.
func WrapInvalidArgumentValue(err error, format string, a ...any) *InvalidArgumentValueError {
	return &InvalidArgumentValueError{Message: fmt.Sprintf(format, a...), Err: err}
}

// RequiredArgumentMissingError reports that a field another field makes
// mandatory is absent.
type RequiredArgumentMissingError struct {
	Message string
}

func (e *RequiredArgumentMissingError) Error() string { return e.Message }

// RequiredArgumentMissingf returns a RequiredArgumentMissingError with a
// formatted message.
func RequiredArgumentMissingf(format string, a ...any) *RequiredArgumentMissingError {
	return &RequiredArgumentMissingError{Message: fmt.Sprintf(format, a...)}
}

// MutuallyExclusiveArgumentError reports two fields that must not both be
// set.
type MutuallyExclusiveArgumentError struct {
	Message string
}

func (e *MutuallyExclusiveArgumentError) Error() string { return e.Message }

// MutuallyExclusivef returns a MutuallyExclusiveArgumentError with a
// formatted message.
func MutuallyExclusivef(format string, a ...any) *MutuallyExclusiveArgumentError {
	return &MutuallyExclusiveArgumentError{Message: fmt.Sprintf(format, a...)}
}

// InternalError reports an unexpected failure from a remote dependency.
// A remote "not found" outcome is user input error, not an InternalError.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string { return e.Message }

func (e *InternalError) Unwrap() error { return e.Err }

// WrapInternal returns an InternalError with a formatted message wrapping
// the given cause.
func WrapInternal(err error, format string, a ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, a...), Err: err}
}
