package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultWaitDelay is how long a cancelled robot may take to exit after the
// interrupt before it is killed.
const DefaultWaitDelay = 10 * time.Second

// CommandRunner executes external commands.
type CommandRunner interface {
	// Run executes name with args in dir using exactly env as the process
	// environment and returns the exit status.
	Run(ctx context.Context, dir, name string, args, env []string) (int, error)
}

// CommandError reports a command that could not be run to completion.
type CommandError struct {
	Command string
	Args    []string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("cannot run %s: %v", strings.Join(append([]string{e.Command}, e.Args...), " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands as child processes attached to the given stdio.
type ExecRunner struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	WaitDelay time.Duration
}

// NewExecRunner returns a runner attached to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: DefaultWaitDelay,
	}
}

// Run starts the command and waits for it. Cancelling ctx sends an
// interrupt to the child so robot can write its outputs before exiting.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args, env []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, &CommandError{Command: name, Args: args, Err: err}
}
