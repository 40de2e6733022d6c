package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/rfcli/packages/core/target"
)

type ConsoleFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	noColor   bool

	red  *color.Color
	cyan *color.Color
	bold *color.Color
	dim  *color.Color
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
		red:       color.New(color.FgRed, color.Bold),
		cyan:      color.New(color.FgCyan),
		bold:      color.New(color.Bold),
		dim:       color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		for _, c := range []*color.Color{f.red, f.cyan, f.bold, f.dim} {
			c.DisableColor()
		}
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithErrWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.errWriter = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatError prints "Error: <message>" to the error writer.
func (f *ConsoleFormatter) FormatError(err error) {
	fmt.Fprintf(f.errWriter, "%s %v\n", f.red.Sprint("Error:"), err)
}

// FormatCommand prints the command preview produced for --rfcli-show.
func (f *ConsoleFormatter) FormatCommand(preview string) {
	fmt.Fprintln(f.writer, preview)
}

// FormatTargets lists the resolved targets with their variable prefixes.
func (f *ConsoleFormatter) FormatTargets(loaded []*target.Loaded) {
	for _, l := range loaded {
		fmt.Fprintf(f.writer, "%s %s %s\n",
			f.bold.Sprint(target.Prefix(l.Index)),
			l.Name,
			f.dim.Sprintf("(%s, %d variables)", l.Path, len(l.Entries)))
	}
}

// FormatDebug prints the environment and command line robot is started with.
func (f *ConsoleFormatter) FormatDebug(environ, commandline []string) {
	fmt.Fprintln(f.writer, f.bold.Sprint("Environment:"))
	for _, e := range environ {
		fmt.Fprintf(f.writer, "  %s\n", e)
	}
	fmt.Fprintf(f.writer, "%s %s\n", f.bold.Sprint("Commandline:"), strings.Join(commandline, " "))
}

// FormatLogsHint points at the log.html served from public_html.
func (f *ConsoleFormatter) FormatLogsHint(url string) {
	fmt.Fprintf(f.writer, "HTML logs might be located at: %s\n", f.cyan.Sprint(url))
}

// FormatVersion prints the version line.
func (f *ConsoleFormatter) FormatVersion(version, buildTime string) {
	fmt.Fprintf(f.writer, "rfcli %s", version)
	if buildTime != "" && buildTime != "unknown" {
		fmt.Fprintf(f.writer, " (built %s)", buildTime)
	}
	fmt.Fprintln(f.writer)
}
