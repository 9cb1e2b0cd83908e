package usecase

import (
	"context"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) result(args mock.Arguments) (domain.CommandResult, error) {
	return args.Get(0).(domain.CommandResult), args.Error(1)
}

func (m *mockGitRepository) IsInsideWorkTree(ctx context.Context) (domain.CommandResult, error) {
	return m.result(m.Called(ctx))
}

func (m *mockGitRepository) CurrentBranch(ctx context.Context) (domain.CommandResult, error) {
	return m.result(m.Called(ctx))
}

func (m *mockGitRepository) Status(ctx context.Context) (domain.CommandResult, error) {
	return m.result(m.Called(ctx))
}

func (m *mockGitRepository) StagedFiles(ctx context.Context) (domain.CommandResult, error) {
	return m.result(m.Called(ctx))
}

func (m *mockGitRepository) TagExists(ctx context.Context, tag string) (domain.CommandResult, error) {
	return m.result(m.Called(ctx, tag))
}

func (m *mockGitRepository) AddAll(ctx context.Context) (domain.CommandResult, error) {
	return m.result(m.Called(ctx))
}

func (m *mockGitRepository) Commit(ctx context.Context, message string) (domain.CommandResult, error) {
	return m.result(m.Called(ctx, message))
}

func (m *mockGitRepository) PushBranch(ctx context.Context, remote, branch string) (domain.CommandResult, error) {
	return m.result(m.Called(ctx, remote, branch))
}

func (m *mockGitRepository) CreateAnnotatedTag(ctx context.Context, tag, message string) (domain.CommandResult, error) {
	return m.result(m.Called(ctx, tag, message))
}

func (m *mockGitRepository) PushTag(ctx context.Context, remote, tag string) (domain.CommandResult, error) {
	return m.result(m.Called(ctx, remote, tag))
}

func ok(command string) domain.CommandResult {
	return domain.CommandResult{Command: command}
}

func okWithOutput(command, stdout string) domain.CommandResult {
	return domain.CommandResult{Command: command, Stdout: stdout}
}

func failed(command string, code int) domain.CommandResult {
	return domain.CommandResult{Command: command, ExitCode: code}
}
