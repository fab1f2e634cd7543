package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/inferus/internal/config"
)

// Exit codes for inferus.
const (
	// ExitSuccess indicates every document parsed cleanly.
	ExitSuccess = 0

	// ExitAnomalies indicates check found recovered errors or a round-trip mismatch.
	ExitAnomalies = 1

	// ExitConfigError indicates an invalid configuration file or value.
	ExitConfigError = 65

	// ExitInternalError indicates any other failure.
	ExitInternalError = 70

	// ExitIOError indicates an input could not be read.
	ExitIOError = 74
)

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseAnomalies):
		return ExitAnomalies
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
