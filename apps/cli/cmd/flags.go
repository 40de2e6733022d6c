package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/abdul-hamid-achik/rfcli/packages/core/env"
)

// envPrefix marks environment variables that provide flag defaults.
const envPrefix = "RFCLI_"

const usageLine = "rfcli [RFCLI OPTIONS] [ROBOT OPTIONS AND ARGUMENTS]"

const description = `A Robot Framework frontend script. All command line options are passed to
robot, except for ones listed below.

It adds ./libraries and ./resources to PYTHONPATH so that libraries and
resources can easily be imported in test cases. Additionally, it will
recursively search the ./testcases directory for any subdirectories named
"libraries" and add those to PYTHONPATH.

Use rfcli --help to see robot help.`

const targetUsage = `target system, repeatable. Either the name of a target
without extension, looked up as <targets>/<name>.ini and then
<targets>/<name>.yaml, or a path to a .ini or .yaml file.
The first target's name is exported to the Robot variable
RFCLI_TARGET_1, the second to RFCLI_TARGET_2 and so on.
Properties are available as ${RFCLI_TARGET_1.IP}; nested
YAML keys are joined with "." as in
${RFCLI_TARGET_1.ENV.NTP_SERVERS}. YAML scalars are
passed as written in the file (yes, 010 and 1.0 stay
as they are), null becomes an empty string and lists
become flow text such as [a, b]`

// rfcliFlags holds the options rfcli consumes itself.
type rfcliFlags struct {
	version      bool
	help         bool
	debug        bool
	show         bool
	noPythonPath bool
	noColor      bool
	output       string
	configFile   string
	envFile      string
	targets      []string
}

func newFlagSet(f *rfcliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("rfcli", pflag.ContinueOnError)
	fs.SortFlags = false
	defaults := env.LoadSystemEnv(envPrefix)

	fs.BoolVar(&f.version, "version", false, "show rfcli version and exit")
	fs.StringVar(&f.output, "rfcli-output", getEnvString(defaults, "OUTPUT", ""),
		"output directory (default: $HOME/public_html/rfcli if it exists,\notherwise ./rfcli_output) (env: RFCLI_OUTPUT)")
	fs.BoolVar(&f.help, "rfcli-help", false, "show help for the wrapper command")
	fs.BoolVar(&f.debug, "rfcli-debug", getEnvBool(defaults, "DEBUG", false),
		"print target resolution, environment and command line (env: RFCLI_DEBUG)")
	fs.BoolVar(&f.show, "rfcli-show", false, "show the robot command that would be executed, but don't execute it")
	fs.StringArrayVarP(&f.targets, "target", "t", nil, targetUsage)
	fs.BoolVar(&f.noPythonPath, "rfcli-no-pythonpath", false, "do not set PYTHONPATH to libraries")
	fs.StringVar(&f.configFile, "rfcli-config", getEnvString(defaults, "CONFIG", ""),
		"config file (default: .rfcli.yaml in the working directory) (env: RFCLI_CONFIG)")
	fs.StringVar(&f.envFile, "rfcli-env-file", "", "file of KEY=value variables added to robot's environment")
	fs.BoolVar(&f.noColor, "rfcli-no-color", getEnvBool(defaults, "NO_COLOR", false), "disable colored output (env: RFCLI_NO_COLOR)")

	return fs
}

// splitArgs sets the rfcli flags found in args and returns the remaining
// arguments, in order, for robot. Everything after "--" belongs to robot.
func splitArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	robot := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			robot = append(robot, args[i:]...)
			break
		}

		flag, value, hasValue := lookupFlag(fs, arg)
		if flag == nil {
			robot = append(robot, arg)
			continue
		}

		if !hasValue {
			if flag.NoOptDefVal != "" {
				value = flag.NoOptDefVal
			} else {
				if i+1 >= len(args) {
					return nil, fmt.Errorf("flag needs an argument: %s", arg)
				}
				i++
				value = args[i]
			}
		}

		if err := fs.Set(flag.Name, value); err != nil {
			return nil, fmt.Errorf("invalid argument %q for %s: %w", value, arg, err)
		}
	}

	return robot, nil
}

// lookupFlag matches --name, --name=value, -x, -xvalue and -x=value against
// fs. Abbreviated long names are not accepted.
func lookupFlag(fs *pflag.FlagSet, arg string) (*pflag.Flag, string, bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, value, hasValue := strings.Cut(arg[2:], "=")
		return fs.Lookup(name), value, hasValue

	case strings.HasPrefix(arg, "-") && len(arg) > 1 && arg[1] != '-':
		flag := fs.ShorthandLookup(arg[1:2])
		if flag == nil {
			return nil, "", false
		}
		rest := arg[2:]
		if rest == "" {
			return flag, "", false
		}
		return flag, strings.TrimPrefix(rest, "="), true
	}
	return nil, "", false
}

func usage(fs *pflag.FlagSet) string {
	var sb strings.Builder
	sb.WriteString("usage: " + usageLine + "\n\n")
	sb.WriteString(description + "\n\n")
	sb.WriteString("optional arguments:\n")
	sb.WriteString(fs.FlagUsages())
	return sb.String()
}

func getEnvString(vars map[string]string, key, defaultVal string) string {
	if val := vars[key]; val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(vars map[string]string, key string, defaultVal bool) bool {
	if val := vars[key]; val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
