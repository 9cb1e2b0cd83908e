package domain

import "strings"

// CommandResult is the outcome of one external command invocation.
type CommandResult struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandLine renders a command the way a user would type it.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// RequireSuccess turns a failed invocation into a CommandFailed error.
// err is a failure to run the process at all; a non-zero exit code is a failure of the command itself.
func RequireSuccess(result CommandResult, err error) error {
	if err != nil {
		return NewCommandFailedError(result.Command, 1, err)
	}
	if !result.Succeeded() {
		return NewCommandFailedError(result.Command, result.ExitCode, nil)
	}
	return nil
}
