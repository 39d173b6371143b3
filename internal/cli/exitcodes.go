package cli

import (
	"errors"

	reqhttp "github.com/shapestone/shape-reqline/pkg/http"
)

// Exit codes for the reqline CLI
const (
	// ExitSuccess indicates the input parsed
	ExitSuccess = 0

	// ExitParseError indicates the request or header could not be parsed
	ExitParseError = 1

	// ExitInputError indicates the input could not be read
	ExitInputError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var pe *reqhttp.ParseError
	var ie *inputError
	var ce *configError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &pe):
		return ExitParseError
	case errors.As(err, &ie):
		return ExitInputError
	case errors.As(err, &ce):
		return ExitConfigError
	default:
		return ExitUsageError
	}
}

type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }
