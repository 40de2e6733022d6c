package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rfcli/packages/core/config"
	"github.com/abdul-hamid-achik/rfcli/packages/core/env"
	"github.com/abdul-hamid-achik/rfcli/packages/core/runner"
	"github.com/abdul-hamid-achik/rfcli/packages/core/target"
	"github.com/abdul-hamid-achik/rfcli/packages/output"
)

func runRoot(cmd *cobra.Command, sys *system, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	flags := &rfcliFlags{}
	fs := newFlagSet(flags)
	robotArgs, err := splitArgs(fs, args)
	if err != nil {
		formatter := output.NewConsoleFormatter(output.WithWriter(stdout), output.WithErrWriter(stderr))
		formatter.FormatError(fmt.Errorf("%w (see rfcli --rfcli-help)", err))
		return &ExitError{Code: ExitUsageError, Err: err}
	}

	logger := newLogger(stderr, flags.debug)

	if flags.version {
		output.NewConsoleFormatter(output.WithWriter(stdout)).FormatVersion(version, buildTime)
		return nil
	}

	robotArgs = runner.StripStatusRC(robotArgs)
	if flags.help || len(robotArgs) == 0 {
		fmt.Fprint(stdout, usage(fs))
		return nil
	}

	fail := func(code int, err error) error {
		output.NewConsoleFormatter(output.WithErrWriter(stderr), output.WithNoColor(flags.noColor)).FormatError(err)
		return &ExitError{Code: code, Err: err}
	}

	wd, err := sys.getwd()
	if err != nil {
		return fail(ExitFailure, fmt.Errorf("cannot determine working directory: %w", err))
	}

	cfg, err := config.LoadConfig(flags.configFile, wd)
	if err != nil {
		return fail(ExitConfigError, err)
	}
	logger.Debug("configuration loaded", "dir", wd, "robot", cfg.Robot, "targetsDir", cfg.TargetsDir)

	formatter := output.NewConsoleFormatter(
		output.WithWriter(stdout),
		output.WithErrWriter(stderr),
		output.WithNoColor(flags.noColor || cfg.GetNoColor()),
	)

	resolver := target.NewResolver(target.WithBaseDir(wd), target.WithTargetsDir(cfg.TargetsDir))
	loaded, err := resolver.LoadAll(flags.targets)
	if err != nil {
		formatter.FormatError(err)
		return &ExitError{Code: ExitTargetError, Err: err}
	}
	for _, l := range loaded {
		logger.Debug("target resolved", "index", l.Index, "spec", l.Spec, "path", l.Path, "format", l.Format, "entries", len(l.Entries))
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	home, err := sys.home()
	if err != nil {
		logger.Debug("no home directory", "error", err)
		home = ""
	}
	outputDir = runner.OutputDirectory(outputDir, home, dirExists)

	vars, err := robotEnvironment(wd, flags, cfg, logger)
	if err != nil {
		formatter.FormatError(err)
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	command := &runner.Command{
		Executable: cfg.Robot,
		Listeners:  cfg.Listeners,
		Options: runner.BuildOptions(loaded, runner.Options{
			OutputDir: outputDir,
			DebugFile: cfg.DebugFile,
			LogLevel:  cfg.LogLevel,
		}),
		Args:    robotArgs,
		Dir:     wd,
		Env:     vars,
		BaseEnv: sys.environ(),
	}

	if flags.show {
		formatter.FormatCommand(command.String())
		return nil
	}

	if flags.debug {
		formatter.FormatTargets(loaded)
		formatter.FormatDebug(command.Environ(), command.Commandline())
	}

	status, err := command.Execute(cmd.Context(), sys.runner)
	if runner.UnderPublicHTML(outputDir) {
		host, herr := sys.hostname()
		if herr != nil {
			logger.Debug("cannot determine host name", "error", herr)
			host = "localhost"
		}
		formatter.FormatLogsHint(runner.LogsURL(host, sys.username()))
	}
	if err != nil {
		formatter.FormatError(err)
		return &ExitError{Code: ExitRunnerError, Err: err}
	}

	logger.Debug("robot finished", "status", status)
	if status != ExitSuccess {
		return &ExitError{Code: status}
	}
	return nil
}

// robotEnvironment returns the variables added to robot's environment:
// PYTHONPATH unless disabled, then the env file's variables.
func robotEnvironment(wd string, flags *rfcliFlags, cfg *config.Config, logger *slog.Logger) ([]env.Var, error) {
	var vars []env.Var

	if !flags.noPythonPath && cfg.GetPythonPath() {
		paths := env.PythonPath(wd)
		logger.Debug("python path", "entries", len(paths))
		vars = env.Set(vars, env.PythonPathVar, env.JoinPath(paths))
	}

	if flags.envFile != "" {
		fileVars, err := env.LoadDotEnv(flags.envFile)
		if err != nil {
			return nil, err
		}
		vars = env.Merge(vars, fileVars)
	}

	return vars, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
