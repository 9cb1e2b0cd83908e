package repository

import (
	"context"

	"github.com/compozy/releasetag/internal/domain"
)

// GitRepository defines the git operations of a release run.
// Every method returns the raw command result; callers decide what a non-zero exit means.

type GitRepository interface {
	// Queries
	IsInsideWorkTree(ctx context.Context) (domain.CommandResult, error)
	CurrentBranch(ctx context.Context) (domain.CommandResult, error)
	Status(ctx context.Context) (domain.CommandResult, error)
	StagedFiles(ctx context.Context) (domain.CommandResult, error)
	TagExists(ctx context.Context, tag string) (domain.CommandResult, error)
	// Mutations
	AddAll(ctx context.Context) (domain.CommandResult, error)
	Commit(ctx context.Context, message string) (domain.CommandResult, error)
	PushBranch(ctx context.Context, remote, branch string) (domain.CommandResult, error)
	CreateAnnotatedTag(ctx context.Context, tag, message string) (domain.CommandResult, error)
	PushTag(ctx context.Context, remote, tag string) (domain.CommandResult, error)
}
