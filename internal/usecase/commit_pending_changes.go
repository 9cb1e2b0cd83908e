package usecase

import (
	"context"
	"strings"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/compozy/releasetag/internal/repository"
)

// CommitPendingChangesUseCase stages and commits a dirty working tree before the release push.

type CommitPendingChangesUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case and reports whether a commit was created.
// A clean tree is left alone whatever skipCommit says.
func (uc *CommitPendingChangesUseCase) Execute(ctx context.Context, message string, skipCommit bool) (bool, error) {
	status, err := uc.GitRepo.Status(ctx)
	if err := domain.RequireSuccess(status, err); err != nil {
		return false, err
	}
	if strings.TrimSpace(status.Stdout) == "" {
		return false, nil
	}
	if skipCommit {
		return false, domain.NewDirtyWorkingTreeNoCommitError()
	}
	if err := domain.RequireSuccess(uc.GitRepo.AddAll(ctx)); err != nil {
		return false, err
	}
	// Staging can leave the index unchanged, e.g. when only ignored files showed up
	staged, err := uc.GitRepo.StagedFiles(ctx)
	if err := domain.RequireSuccess(staged, err); err != nil {
		return false, err
	}
	if strings.TrimSpace(staged.Stdout) == "" {
		return false, nil
	}
	if err := domain.RequireSuccess(uc.GitRepo.Commit(ctx, message)); err != nil {
		return false, err
	}
	return true, nil
}
