// SPDX-License-Identifier: MPL-2.0

package helpdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFunctionName is the sentinel error wrapped by InvalidFunctionNameError.
	ErrInvalidFunctionName = errors.New("invalid function name")
	// ErrInvalidParameterName is the sentinel error wrapped by InvalidParameterNameError.
	ErrInvalidParameterName = errors.New("invalid parameter name")
)

type (
	// FunctionName identifies an exported command of a module.
	// A valid name must be non-empty and not whitespace-only.
	FunctionName string

	// InvalidFunctionNameError is returned when a FunctionName value is empty
	// or whitespace-only. It wraps ErrInvalidFunctionName for errors.Is().
	InvalidFunctionNameError struct {
		Value FunctionName
	}

	// ParameterName identifies a declared parameter (flag) of a command.
	// A valid name must be non-empty, not whitespace-only, and must not
	// carry the parameter marker prefix (names are stored bare).
	ParameterName string

	// InvalidParameterNameError is returned when a ParameterName value is
	// empty, whitespace-only, or includes the marker prefix.
	// It wraps ErrInvalidParameterName for errors.Is() compatibility.
	InvalidParameterNameError struct {
		Value ParameterName
	}
)

// String returns the string representation of the FunctionName.
func (n FunctionName) String() string { return string(n) }

// IsValid returns whether the FunctionName is valid,
// and a list of validation errors if it is not.
func (n FunctionName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidFunctionNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidFunctionNameError.
func (e *InvalidFunctionNameError) Error() string {
	return fmt.Sprintf("invalid function name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidFunctionName for errors.Is() compatibility.
func (e *InvalidFunctionNameError) Unwrap() error { return ErrInvalidFunctionName }

// String returns the string representation of the ParameterName.
func (n ParameterName) String() string { return string(n) }

// IsValid returns whether the ParameterName is valid,
// and a list of validation errors if it is not.
func (n ParameterName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" || strings.HasPrefix(string(n), ParameterMarker) {
		return false, []error{&InvalidParameterNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidParameterNameError.
func (e *InvalidParameterNameError) Error() string {
	return fmt.Sprintf("invalid parameter name %q: must be non-empty and not include the %q marker", e.Value, ParameterMarker)
}

// Unwrap returns ErrInvalidParameterName for errors.Is() compatibility.
func (e *InvalidParameterNameError) Unwrap() error { return ErrInvalidParameterName }
