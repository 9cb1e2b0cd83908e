package orchestrator

import (
	"context"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) result(args mock.Arguments) (domain.CommandResult, error) {
	return args.Get(0).(domain.CommandResult), args.Error(1)
}

// Queries
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

// Mutations
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

// calledMethods lists the mocked methods in call order.
func (m *mockGitRepository) calledMethods() []string {
	methods := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		methods = append(methods, call.Method)
	}
	return methods
}

func result(stdout string, exitCode int) domain.CommandResult {
	return domain.CommandResult{Command: "git", Stdout: stdout, ExitCode: exitCode}
}
