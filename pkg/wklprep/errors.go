package wklprep

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	res, err := preparer.Prepare(inputs)
//	if errors.Is(err, wklprep.ErrInvalidDuration) {
//	    // DURTIME had a unit suffix but no integer in front of it
//	}
var (
	// ErrInvalidConfig indicates the provided configuration or inputs are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownParameter indicates an input name that is not one of the host bindings.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrInvalidDuration indicates a suffixed duration whose numeric prefix is not an integer.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidPassword indicates an obfuscated password token that cannot be decoded.
	ErrInvalidPassword = errors.New("invalid password token")
)

// usageErrorPatterns are fragments of the messages cobra and pflag return for
// command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidDuration):
		return ExitDurationError
	case errors.Is(err, ErrInvalidPassword):
		return ExitPasswordError
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownParameter):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
