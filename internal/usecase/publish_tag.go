package usecase

import (
	"context"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/compozy/releasetag/internal/repository"
)

// PublishTagUseCase creates the annotated release tag and pushes it.

type PublishTagUseCase struct {
	GitRepo repository.GitRepository
}

// Execute refuses to touch an existing tag, then creates and pushes tag to remote.
func (uc *PublishTagUseCase) Execute(ctx context.Context, remote, tag string) error {
	exists, err := uc.GitRepo.TagExists(ctx, tag)
	if err != nil {
		return domain.NewCommandFailedError(exists.Command, 1, err)
	}
	if exists.Succeeded() {
		return domain.NewTagAlreadyExistsError(tag)
	}
	if err := domain.RequireSuccess(uc.GitRepo.CreateAnnotatedTag(ctx, tag, domain.TagAnnotation(tag))); err != nil {
		return err
	}
	return domain.RequireSuccess(uc.GitRepo.PushTag(ctx, remote, tag))
}
