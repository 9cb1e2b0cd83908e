package cmd

import (
	"io"
	"os"

	"github.com/compozy/releasetag/internal/config"
	"github.com/compozy/releasetag/internal/logging"
	"github.com/compozy/releasetag/internal/orchestrator"
	"github.com/compozy/releasetag/internal/repository"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.

type container struct {
	cfg     *config.Config
	logger  *zap.Logger
	gitRepo repository.GitRepository
	orch    *orchestrator.ReleaseOrchestrator
}

// newContainer creates a new container with all the dependencies.
func newContainer(stdout, stderr io.Writer) (*container, error) {
	cfg, err := config.LoadConfig(afero.NewOsFs())
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLoggerFactory().CreateLogger(
		logging.LogLevel(cfg.LogLevel),
		logging.LogFormat(cfg.LogFormat),
	)
	if err != nil {
		return nil, err
	}
	runner := repository.NewCommandRunner(repository.CommandRunnerConfig{
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	})
	return newContainerWithRunner(cfg, logger, runner, stdout), nil
}

// newContainerWithRunner wires everything on top of an existing command runner.
func newContainerWithRunner(
	cfg *config.Config,
	logger *zap.Logger,
	runner repository.CommandRunner,
	stdout io.Writer,
) *container {
	gitRepo := repository.NewGitRepository(runner, cfg.GitBinary)
	return &container{
		cfg:     cfg,
		logger:  logger,
		gitRepo: gitRepo,
		orch:    orchestrator.NewReleaseOrchestrator(gitRepo, cfg.GitBinary, logger, stdout),
	}
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	configureCommands(rootCmd, c)
	return nil
}

func configureCommands(root *cobra.Command, c *container) {
	configureReleaseCommand(root, c.orch, c.cfg.Remote)
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(c.cfg))
}
