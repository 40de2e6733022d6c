// Package runner builds and executes the robot command line for resolved
// targets.
//
// It provides functionality for:
//   - Translating loaded targets into robot --variable options
//   - Choosing the output directory and the public_html log hint
//   - Executing robot with an explicit environment and relaying its status
//
// Process execution goes through the CommandRunner interface so callers can
// substitute a recording runner in tests.
package runner
