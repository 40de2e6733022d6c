// Package cmd implements the rfcli command line using Cobra.
//
// rfcli is a Robot Framework frontend. It consumes its own options
// (--rfcli-*, --version and -t/--target) and forwards every other argument
// to robot unchanged, adding:
//   - RFCLI_TARGET_<n> variables read from INI or YAML target files
//   - the output directory, debug file, log level and --nostatusrc options
//   - PYTHONPATH entries for the project's libraries and resources
//
// Robot's exit status becomes rfcli's exit status.
package cmd
