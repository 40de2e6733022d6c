// Package target resolves target specifications into Robot Framework variables.
//
// A target is an INI or YAML file describing a system under test. It can be
// named in two ways:
//   - a bare name such as "lab1", looked up as targets/lab1.ini and then
//     targets/lab1.yaml
//   - a path with a mandatory .ini or .yaml extension, or a path without an
//     extension, which is never looked up under the targets directory
//
// INI targets contribute the keys of their [target] section. YAML targets may
// nest mappings; each leaf becomes a dotted key such as env.parameters.ntp_servers.
// Resolved targets are numbered from 1 and exported as RFCLI_TARGET_<n> variables.
package target
