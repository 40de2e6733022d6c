package runner

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/rfcli/packages/core/env"
)

// DefaultExecutable starts Robot Framework.
const DefaultExecutable = "robot"

// Command is a fully assembled robot invocation.
type Command struct {
	Executable []string // Defaults to [robot]
	Listeners  []string
	Options    []string
	Args       []string
	Dir        string

	Env     []env.Var // Variables added for robot
	BaseEnv []string  // Inherited environment; nil means os.Environ()
}

// Commandline returns the executable followed by the listener options, the
// rfcli options and the user's robot arguments.
func (c *Command) Commandline() []string {
	exe := c.Executable
	if len(exe) == 0 {
		exe = []string{DefaultExecutable}
	}

	cl := make([]string, 0, len(exe)+2*len(c.Listeners)+len(c.Options)+len(c.Args))
	cl = append(cl, exe...)
	for _, l := range c.Listeners {
		cl = append(cl, "--listener", l)
	}
	cl = append(cl, c.Options...)
	return append(cl, c.Args...)
}

// Environ returns the complete environment robot runs with.
func (c *Command) Environ() []string {
	base := c.BaseEnv
	if base == nil {
		base = os.Environ()
	}
	return env.Build(base, c.Env)
}

// String renders the command as a shell snippet: an export line per added
// variable with its final value, then the command line.
func (c *Command) String() string {
	full := make(map[string]string)
	for _, e := range c.Environ() {
		name, value, _ := strings.Cut(e, "=")
		full[name] = value
	}

	var sb strings.Builder
	for _, v := range c.Env {
		sb.WriteString("export " + v.Name + "=\"" + full[v.Name] + "\"\n")
	}
	sb.WriteString(strings.Join(c.Commandline(), " "))
	return sb.String()
}

// Execute runs the command and returns robot's exit status.
func (c *Command) Execute(ctx context.Context, r CommandRunner) (int, error) {
	if r == nil {
		return -1, errors.New("no command runner")
	}
	cl := c.Commandline()
	return r.Run(ctx, c.Dir, cl[0], cl[1:], c.Environ())
}
