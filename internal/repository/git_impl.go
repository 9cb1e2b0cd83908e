package repository

import (
	"context"

	"github.com/compozy/releasetag/internal/domain"
)

// DefaultGitBinary is the executable used when none is configured.
const DefaultGitBinary = "git"

// gitRepository is the git CLI implementation of the GitRepository interface.

type gitRepository struct {
	runner CommandRunner
	binary string
}

// NewGitRepository creates a GitRepository that shells out to binary through runner.
func NewGitRepository(runner CommandRunner, binary string) GitRepository {
	if binary == "" {
		binary = DefaultGitBinary
	}
	return &gitRepository{runner: runner, binary: binary}
}

func (r *gitRepository) git(ctx context.Context, args ...string) (domain.CommandResult, error) {
	return r.runner.Run(ctx, r.binary, args...)
}

// IsInsideWorkTree checks that the working directory belongs to a work tree.
func (r *gitRepository) IsInsideWorkTree(ctx context.Context) (domain.CommandResult, error) {
	return r.git(ctx, "rev-parse", "--is-inside-work-tree")
}

// CurrentBranch prints the abbreviated name of HEAD.
func (r *gitRepository) CurrentBranch(ctx context.Context) (domain.CommandResult, error) {
	return r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// Status lists working tree changes in porcelain format.
func (r *gitRepository) Status(ctx context.Context) (domain.CommandResult, error) {
	return r.git(ctx, "status", "--porcelain")
}

// StagedFiles lists the paths staged in the index.
func (r *gitRepository) StagedFiles(ctx context.Context) (domain.CommandResult, error) {
	return r.git(ctx, "diff", "--cached", "--name-only")
}

// TagExists resolves refs/tags/<tag>; exit code zero means the tag exists locally.
func (r *gitRepository) TagExists(ctx context.Context, tag string) (domain.CommandResult, error) {
	return r.git(ctx, "rev-parse", "--verify", "--quiet", "refs/tags/"+tag)
}

// AddAll stages every change, including deletions and untracked files.
func (r *gitRepository) AddAll(ctx context.Context) (domain.CommandResult, error) {
	return r.git(ctx, "add", "-A")
}

// Commit records the index with message.
func (r *gitRepository) Commit(ctx context.Context, message string) (domain.CommandResult, error) {
	return r.git(ctx, "commit", "-m", message)
}

// PushBranch pushes branch to remote.
func (r *gitRepository) PushBranch(ctx context.Context, remote, branch string) (domain.CommandResult, error) {
	return r.git(ctx, "push", remote, branch)
}

// CreateAnnotatedTag creates an annotated tag on HEAD.
func (r *gitRepository) CreateAnnotatedTag(ctx context.Context, tag, message string) (domain.CommandResult, error) {
	return r.git(ctx, "tag", "-a", tag, "-m", message)
}

// PushTag pushes a single tag to remote.
func (r *gitRepository) PushTag(ctx context.Context, remote, tag string) (domain.CommandResult, error) {
	return r.git(ctx, "push", remote, tag)
}
