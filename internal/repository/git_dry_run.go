package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/compozy/releasetag/internal/domain"
)

// dryRunGitRepository runs queries for real and only announces mutations.
type dryRunGitRepository struct {
	GitRepository
	binary string
	out    io.Writer
}

// NewDryRunGitRepository wraps next so that no mutation reaches the repository.
// Each skipped mutation is written to out as "[dry-run] <command line>".
func NewDryRunGitRepository(next GitRepository, binary string, out io.Writer) GitRepository {
	if binary == "" {
		binary = DefaultGitBinary
	}
	if out == nil {
		out = io.Discard
	}
	return &dryRunGitRepository{GitRepository: next, binary: binary, out: out}
}

func (r *dryRunGitRepository) skip(args ...string) (domain.CommandResult, error) {
	command := domain.CommandLine(r.binary, args...)
	if _, err := fmt.Fprintf(r.out, "[dry-run] %s\n", command); err != nil {
		return domain.CommandResult{Command: command}, fmt.Errorf("failed to write dry-run output: %w", err)
	}
	return domain.CommandResult{Command: command}, nil
}

func (r *dryRunGitRepository) AddAll(_ context.Context) (domain.CommandResult, error) {
	return r.skip("add", "-A")
}

func (r *dryRunGitRepository) Commit(_ context.Context, message string) (domain.CommandResult, error) {
	return r.skip("commit", "-m", message)
}

func (r *dryRunGitRepository) PushBranch(_ context.Context, remote, branch string) (domain.CommandResult, error) {
	return r.skip("push", remote, branch)
}

func (r *dryRunGitRepository) CreateAnnotatedTag(_ context.Context, tag, message string) (domain.CommandResult, error) {
	return r.skip("tag", "-a", tag, "-m", message)
}

func (r *dryRunGitRepository) PushTag(_ context.Context, remote, tag string) (domain.CommandResult, error) {
	return r.skip("push", remote, tag)
}
