package orchestrator

import (
	"strings"

	"github.com/compozy/releasetag/internal/domain"
)

// releasePlan is a ReleaseRequest after trimming and validation.
// Branch stays empty until it is resolved from HEAD.
type releasePlan struct {
	tag        string
	message    string
	remote     string
	branch     string
	skipCommit bool
	dryRun     bool
}

// newReleasePlan validates the tag and applies the documented defaults.
// Only the tag is validated; message, remote and branch are trimmed as given.
func newReleasePlan(req domain.ReleaseRequest) (releasePlan, error) {
	tag, err := domain.ParseReleaseTag(req.Version)
	if err != nil {
		return releasePlan{}, err
	}
	plan := releasePlan{
		tag:        tag,
		message:    strings.TrimSpace(req.Message),
		remote:     strings.TrimSpace(req.Remote),
		branch:     strings.TrimSpace(req.Branch),
		skipCommit: req.SkipCommit,
		dryRun:     req.DryRun,
	}
	if plan.message == "" {
		plan.message = domain.DefaultCommitMessage(tag)
	}
	if plan.remote == "" {
		plan.remote = DefaultRemote
	}
	return plan, nil
}
