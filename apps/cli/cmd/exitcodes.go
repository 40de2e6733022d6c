package cmd

import (
	"errors"
	"fmt"
)

// Exit codes for rfcli. Any other status is robot's own.
const (
	// ExitSuccess indicates robot succeeded or nothing had to run
	ExitSuccess = 0

	// ExitFailure indicates an unexpected error
	ExitFailure = 1

	// ExitTargetError indicates a target could not be found or parsed
	ExitTargetError = 2

	// ExitConfigError indicates a configuration or env file error
	ExitConfigError = 3

	// ExitRunnerError indicates robot could not be started
	ExitRunnerError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// ExitError carries an exit code out of the root command. Err has already
// been reported to the user when set.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps an error returned by the root command to a process status.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
