// Package output provides the console formatter rfcli prints its messages
// with: errors, the command preview, debug dumps and the HTML log hint.
package output
