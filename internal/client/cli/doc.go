// Package cli implements the satstream command-line client. Each invocation
// runs one subcommand against the server and prints the result as JSON,
// indented when stdout is a terminal.
package cli
