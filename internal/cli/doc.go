// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and the optional config file into the application's
// configuration and dispatches to the deps, plan, link and run commands.
package cli
