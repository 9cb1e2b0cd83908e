package cmd

import (
	"github.com/compozy/releasetag/internal/domain"
	"github.com/compozy/releasetag/internal/orchestrator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type releaseFlags struct {
	version  string
	message  string
	remote   string
	branch   string
	noCommit bool
	dryRun   bool
}

func bindReleaseFlags(flags *pflag.FlagSet, f *releaseFlags, defaultRemote string) {
	flags.StringVarP(&f.version, "version", "v", "", "Release tag like v1.5.4 (required)")
	flags.StringVarP(&f.message, "message", "m", "", "Commit message (default: chore: release <tag>)")
	flags.StringVar(&f.remote, "remote", defaultRemote, "Git remote name")
	flags.StringVar(&f.branch, "branch", "", "Branch to push (default: current branch)")
	flags.BoolVar(&f.noCommit, "no-commit", false, "Skip commit even if there are changes")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Print the git commands that would change the repository instead of running them")
}

func (f *releaseFlags) request() domain.ReleaseRequest {
	return domain.ReleaseRequest{
		Version:    f.version,
		Message:    f.message,
		Remote:     f.remote,
		Branch:     f.branch,
		SkipCommit: f.noCommit,
		DryRun:     f.dryRun,
	}
}

// configureReleaseCommand makes cmd run the release workflow.
func configureReleaseCommand(cmd *cobra.Command, orch *orchestrator.ReleaseOrchestrator, defaultRemote string) {
	var flags releaseFlags
	bindReleaseFlags(cmd.Flags(), &flags, defaultRemote)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return orch.Execute(cmd.Context(), flags.request())
	}
}
