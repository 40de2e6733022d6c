// Package config handles configuration loading and management for rfcli.
//
// It provides functionality for:
//   - Loading configuration from .rfcli.yaml, rfcli.yaml or .rfclirc.json files
//   - Default configuration values
//   - Merging command-line overrides
package config
