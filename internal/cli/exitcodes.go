package cli

import (
	"errors"

	"github.com/ftomassetti/javaparser/internal/configloader"
	"github.com/ftomassetti/javaparser/pkg/runner"
)

// Exit codes for jlpp.
const (
	// ExitSuccess indicates every file passed.
	ExitSuccess = 0

	// ExitCheckFailed indicates a check ran and at least one file failed it.
	ExitCheckFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrCheckFailed is returned when a command finished but some file failed.
	// It only selects the exit code and is not reported as an error.
	ErrCheckFailed = errors.New("check failed")

	// ErrInvalidUsage marks bad flag values and arguments.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks failures to load or validate configuration.
	ErrConfig = errors.New("load configuration")
)

// ExitCodeFromResult determines the exit code of a finished run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasFailures() {
		return ExitSuccess
	}
	return ExitCheckFailed
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
