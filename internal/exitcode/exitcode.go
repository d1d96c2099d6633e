// Package exitcode defines exit codes for the shell.
package exitcode

const (
	// Success indicates normal termination: menu exit, interrupt, or end
	// of input.
	Success = 0

	// IOError indicates the input stream failed with a read error.
	IOError = 1
)
