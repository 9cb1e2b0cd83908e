package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/compozy/releasetag/internal/domain"
	"go.uber.org/zap"
)

// CommandRunner executes external commands.
// A non-zero exit is reported through CommandResult.ExitCode; the error is reserved for
// commands that could not be run at all.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error)
}

// CommandRunnerConfig configures the os/exec backed runner.
type CommandRunnerConfig struct {
	// Dir is the working directory; empty means the current directory
	Dir string
	// Stdout and Stderr receive a live copy of the command output
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// execCommandRunner is the os/exec implementation of CommandRunner.
type execCommandRunner struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewCommandRunner creates a CommandRunner that tees command output to the configured writers.
func NewCommandRunner(cfg CommandRunnerConfig) CommandRunner {
	r := &execCommandRunner{
		dir:    cfg.Dir,
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
		logger: cfg.Logger,
	}
	if r.stdout == nil {
		r.stdout = io.Discard
	}
	if r.stderr == nil {
		r.stderr = io.Discard
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Run executes name with args and waits for it to exit.
func (r *execCommandRunner) Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error) {
	result := domain.CommandResult{Command: domain.CommandLine(name, args...)}
	cmd := exec.CommandContext(ctx, name, args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(&stdout, r.stdout)
	cmd.Stderr = io.MultiWriter(&stderr, r.stderr)
	r.logger.Debug("Running command", zap.String("command", result.Command), zap.String("dir", r.dir))
	err := cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		// A negative code means the process was killed by a signal
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("Command exited with non-zero status",
				zap.String("command", result.Command),
				zap.Int("exit_code", result.ExitCode),
			)
			return result, nil
		}
		r.logger.Error("Command could not be executed", zap.String("command", result.Command), zap.Error(err))
		return result, err
	}
	r.logger.Debug("Command completed", zap.String("command", result.Command))
	return result, nil
}
