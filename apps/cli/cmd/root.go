package cmd

import (
	"context"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rfcli/packages/core/runner"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// system collects what the root command reads from the host, so tests can
// run it against a temporary directory and a recording runner.
type system struct {
	runner   runner.CommandRunner
	getwd    func() (string, error)
	home     func() (string, error)
	hostname func() (string, error)
	username func() string
	environ  func() []string
}

func defaultSystem() *system {
	return &system{
		runner:   runner.NewExecRunner(),
		getwd:    os.Getwd,
		home:     os.UserHomeDir,
		hostname: os.Hostname,
		username: currentUser,
		environ:  os.Environ,
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

// NewRootCommand returns the rfcli command executing robot through r.
func NewRootCommand(r runner.CommandRunner) *cobra.Command {
	sys := defaultSystem()
	sys.runner = r
	return newRootCommand(sys)
}

func newRootCommand(sys *system) *cobra.Command {
	return &cobra.Command{
		Use:   usageLine,
		Short: "Robot Framework frontend with target files",
		Long:  description,
		Args:  cobra.ArbitraryArgs,

		// rfcli's flags are mixed with robot's, which cobra cannot parse.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, sys, args)
		},
	}
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand(runner.NewExecRunner()).ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err))
}
