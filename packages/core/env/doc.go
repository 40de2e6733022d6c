// Package env builds the environment handed to the robot process.
//
// It provides functionality for:
//   - Computing the Python import path (libraries, resources and every
//     testcases/**/libraries directory)
//   - Loading extra variables from .env files
//   - Merging new variables into an inherited environment without touching
//     the environment of the current process
package env
