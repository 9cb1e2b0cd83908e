package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a release run can end with.
type ErrorKind string

const (
	ErrorKindInvalidVersionFormat     ErrorKind = "invalid_version_format"
	ErrorKindNotARepository           ErrorKind = "not_a_repository"
	ErrorKindDirtyWorkingTreeNoCommit ErrorKind = "dirty_working_tree_no_commit"
	ErrorKindTagAlreadyExists         ErrorKind = "tag_already_exists"
	ErrorKindCommandFailed            ErrorKind = "command_failed"
	ErrorKindUsage                    ErrorKind = "usage"
)

const (
	// ExitCodeSuccess is returned when the whole sequence completed
	ExitCodeSuccess = 0
	// ExitCodeGenericFailure is the fallback for failures without a more specific code
	ExitCodeGenericFailure = 1
	// ExitCodePrecondition is returned for validation and precondition failures
	ExitCodePrecondition = 2
)

// Sentinel errors, one per kind. Use errors.Is to test a ReleaseError against them.
var (
	ErrInvalidVersionFormat     = errors.New("invalid version format")
	ErrNotARepository           = errors.New("not a git repository")
	ErrDirtyWorkingTreeNoCommit = errors.New("dirty working tree with --no-commit")
	ErrTagAlreadyExists         = errors.New("tag already exists")
	ErrCommandFailed            = errors.New("command failed")
	ErrUsage                    = errors.New("usage error")
)

var kindSentinels = map[ErrorKind]error{
	ErrorKindInvalidVersionFormat:     ErrInvalidVersionFormat,
	ErrorKindNotARepository:           ErrNotARepository,
	ErrorKindDirtyWorkingTreeNoCommit: ErrDirtyWorkingTreeNoCommit,
	ErrorKindTagAlreadyExists:         ErrTagAlreadyExists,
	ErrorKindCommandFailed:            ErrCommandFailed,
	ErrorKindUsage:                    ErrUsage,
}

// ReleaseError is a user-facing release failure carrying its process exit code.
type ReleaseError struct {
	Kind    ErrorKind
	Message string
	// Command is the failed command line, set for ErrorKindCommandFailed
	Command string
	Code    int
	Err     error
}

func (e *ReleaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReleaseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *ReleaseError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// ExitCode returns the process exit code for this failure.
func (e *ReleaseError) ExitCode() int {
	if e.Code == 0 {
		return ExitCodeGenericFailure
	}
	return e.Code
}

// NewInvalidVersionFormatError creates an error for a malformed release tag.
func NewInvalidVersionFormatError(message string) *ReleaseError {
	return &ReleaseError{Kind: ErrorKindInvalidVersionFormat, Message: message, Code: ExitCodePrecondition}
}

// NewNotARepositoryError creates an error for a working directory outside a git work tree.
func NewNotARepositoryError() *ReleaseError {
	return &ReleaseError{
		Kind:    ErrorKindNotARepository,
		Message: "the current directory is not a git repository",
		Code:    ExitCodePrecondition,
	}
}

// NewDirtyWorkingTreeNoCommitError creates an error for a dirty tree when committing is disabled.
func NewDirtyWorkingTreeNoCommitError() *ReleaseError {
	return &ReleaseError{
		Kind:    ErrorKindDirtyWorkingTreeNoCommit,
		Message: "the working tree is not clean but --no-commit was given; commit or clean it manually first",
		Code:    ExitCodePrecondition,
	}
}

// NewTagAlreadyExistsError creates an error for a tag name collision.
func NewTagAlreadyExistsError(tag string) *ReleaseError {
	return &ReleaseError{
		Kind: ErrorKindTagAlreadyExists,
		Message: fmt.Sprintf(
			"tag already exists: %s; choose a different version or delete the remote tag manually first",
			tag,
		),
		Code: ExitCodePrecondition,
	}
}

// NewCommandFailedError creates an error for a failed external command.
// A zero exit code falls back to 1.
func NewCommandFailedError(command string, exitCode int, cause error) *ReleaseError {
	if exitCode == 0 {
		exitCode = ExitCodeGenericFailure
	}
	return &ReleaseError{
		Kind:    ErrorKindCommandFailed,
		Message: "command failed: " + command,
		Command: command,
		Code:    exitCode,
		Err:     cause,
	}
}

// NewUsageError wraps a command-line parsing failure.
func NewUsageError(cause error) *ReleaseError {
	return &ReleaseError{Kind: ErrorKindUsage, Message: "invalid arguments", Code: ExitCodePrecondition, Err: cause}
}

// ExitCode maps any error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var releaseErr *ReleaseError
	if errors.As(err, &releaseErr) {
		return releaseErr.ExitCode()
	}
	return ExitCodeGenericFailure
}
