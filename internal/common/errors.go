// Package common defines sentinel errors shared by the userdir packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Configuration errors.
	ErrorInvalidConfig = errors.New("invalid config")
)
