package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/rfcli/packages/core/target"
)

const (
	// StatusRC is always passed to robot; a second copy would cancel it out.
	StatusRC = "--nostatusrc"

	// DefaultOutputDir is used when no public_html/rfcli directory exists.
	DefaultOutputDir = "rfcli_output"

	DefaultDebugFile = "debug.txt"
	DefaultLogLevel  = "TRACE:INFO"
)

// Options are the robot settings rfcli appends after the target variables.
type Options struct {
	OutputDir string
	DebugFile string
	LogLevel  string
}

func (o Options) withDefaults() Options {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.DebugFile == "" {
		o.DebugFile = DefaultDebugFile
	}
	if o.LogLevel == "" {
		o.LogLevel = DefaultLogLevel
	}
	return o
}

// BuildOptions returns the robot options for the loaded targets: one
// --variable pair per target variable, then the output, debug file, log
// level and status options.
func BuildOptions(loaded []*target.Loaded, opts Options) []string {
	opts = opts.withDefaults()
	vars := target.Variables(loaded)

	options := make([]string, 0, 2*len(vars)+7)
	for _, v := range vars {
		options = append(options, "--variable", v.String())
	}
	return append(options,
		"-d", opts.OutputDir,
		"-b", opts.DebugFile,
		"--loglevel", opts.LogLevel,
		StatusRC,
	)
}

// StripStatusRC returns args without any --nostatusrc.
func StripStatusRC(args []string) []string {
	result := make([]string, 0, len(args))
	for _, a := range args {
		if a != StatusRC {
			result = append(result, a)
		}
	}
	return result
}

// PublicHTMLOutputDir returns home/public_html/rfcli.
func PublicHTMLOutputDir(home string) string {
	return filepath.Join(home, "public_html", "rfcli")
}

// OutputDirectory picks the robot output directory: the explicit value,
// else home/public_html/rfcli when it exists, else DefaultOutputDir.
func OutputDirectory(explicit, home string, exists func(string) bool) string {
	if explicit != "" {
		return explicit
	}
	if home != "" {
		if dir := PublicHTMLOutputDir(home); exists(dir) {
			return dir
		}
	}
	return DefaultOutputDir
}

// UnderPublicHTML reports whether dir lies inside a public_html directory.
func UnderPublicHTML(dir string) bool {
	return strings.Contains(filepath.ToSlash(dir), "/public_html/")
}

// LogsURL returns the address robot's log.html is served at from the
// user's public_html.
func LogsURL(host, user string) string {
	if user == "" {
		return fmt.Sprintf("http://%s/~/rfcli/log.html", host)
	}
	return fmt.Sprintf("http://%s/~%s/rfcli/log.html", host, user)
}
