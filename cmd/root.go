package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/compozy/releasetag/internal/domain"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release-tag",
		Short: "Commit, push and tag a release",
		Long: `release-tag commits pending changes, pushes the branch, creates an annotated
tag and pushes it. The tag push triggers the automated release pipeline.

Example:
  release-tag --version v1.5.4
  release-tag -v v1.5.4 -m "fix: handle empty schedules" --remote upstream`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return domain.NewUsageError(err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.NewUsageError(err)
	})
	return cmd
}

// Execute runs the root command; an interrupt cancels the running git process.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
