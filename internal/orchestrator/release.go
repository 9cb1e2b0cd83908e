package orchestrator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/compozy/releasetag/internal/repository"
	"github.com/compozy/releasetag/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReleaseOrchestrator commits, pushes and tags a release in a fixed order, stopping at the first failure.
type ReleaseOrchestrator struct {
	gitRepo   repository.GitRepository
	gitBinary string
	logger    *zap.Logger
	out       io.Writer
}

// NewReleaseOrchestrator creates a new release orchestrator.
// out receives the final report and dry-run announcements; gitBinary is only used to render them.
func NewReleaseOrchestrator(
	gitRepo repository.GitRepository,
	gitBinary string,
	logger *zap.Logger,
	out io.Writer,
) *ReleaseOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &ReleaseOrchestrator{
		gitRepo:   gitRepo,
		gitBinary: gitBinary,
		logger:    logger,
		out:       out,
	}
}

// Execute runs the release workflow.
func (o *ReleaseOrchestrator) Execute(ctx context.Context, req domain.ReleaseRequest) error {
	plan, err := newReleasePlan(req)
	if err != nil {
		o.logger.Warn("Rejected release request", zap.String("version", req.Version), zap.Error(err))
		return err
	}
	logger := o.logger.With(zap.String("run_id", uuid.NewString()), zap.String("tag", plan.tag))
	gitRepo := o.gitRepo
	if plan.dryRun {
		gitRepo = repository.NewDryRunGitRepository(gitRepo, o.gitBinary, o.out)
		logger = logger.With(zap.Bool("dry_run", true))
	}
	// Step 1: Make sure we are inside a work tree
	result, err := gitRepo.IsInsideWorkTree(ctx)
	if err != nil {
		return domain.NewCommandFailedError(result.Command, 1, err)
	}
	if !result.Succeeded() {
		logger.Warn("Not inside a git work tree", zap.Int("exit_code", result.ExitCode))
		return domain.NewNotARepositoryError()
	}
	// Step 2: Resolve branch; message and remote defaults are already applied
	if plan.branch == "" {
		branch, err := o.currentBranch(ctx, gitRepo)
		if err != nil {
			return err
		}
		plan.branch = branch
	}
	logger = logger.With(zap.String("branch", plan.branch), zap.String("remote", plan.remote))
	// Step 3: Commit pending changes
	commitUC := &usecase.CommitPendingChangesUseCase{GitRepo: gitRepo}
	committed, err := commitUC.Execute(ctx, plan.message, plan.skipCommit)
	if err != nil {
		logger.Warn("Could not commit pending changes", zap.Error(err))
		return err
	}
	logger.Info("Working tree ready", zap.Bool("committed", committed), zap.String("message", plan.message))
	// Step 4: Push the branch before touching tags
	if err := domain.RequireSuccess(gitRepo.PushBranch(ctx, plan.remote, plan.branch)); err != nil {
		logger.Error("Branch push failed", zap.Error(err))
		return err
	}
	logger.Info("Branch pushed")
	// Step 5: Create and push the tag
	publishUC := &usecase.PublishTagUseCase{GitRepo: gitRepo}
	if err := publishUC.Execute(ctx, plan.remote, plan.tag); err != nil {
		logger.Warn("Tag was not published", zap.Error(err))
		return err
	}
	logger.Info("Tag pushed")
	return o.report(plan)
}

// currentBranch resolves the abbreviated name of HEAD.
func (o *ReleaseOrchestrator) currentBranch(ctx context.Context, gitRepo repository.GitRepository) (string, error) {
	result, err := gitRepo.CurrentBranch(ctx)
	if err := domain.RequireSuccess(result, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// report prints the final summary.
func (o *ReleaseOrchestrator) report(plan releasePlan) error {
	template := successTemplate
	if plan.dryRun {
		template = dryRunSuccessTemplate
	}
	if _, err := fmt.Fprintf(o.out, template, plan.branch, plan.tag); err != nil {
		return fmt.Errorf("failed to write release summary: %w", err)
	}
	return nil
}
