package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// releaseTagRegex is the only accepted tag shape: v<major>.<minor>.<patch>.
var releaseTagRegex = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// ReleaseRequest holds the inputs of a single release run.

type ReleaseRequest struct {
	Version    string
	Message    string
	Remote     string
	Branch     string
	SkipCommit bool
	DryRun     bool
}

// ParseReleaseTag trims and validates a release tag.
func ParseReleaseTag(raw string) (string, error) {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return "", NewInvalidVersionFormatError("version is required (expected something like v1.5.4)")
	}
	if !releaseTagRegex.MatchString(tag) {
		return "", NewInvalidVersionFormatError(
			fmt.Sprintf("invalid version format: %s (expected something like v1.5.4)", tag),
		)
	}
	return tag, nil
}

// DefaultCommitMessage returns the commit message used when none is given.
func DefaultCommitMessage(tag string) string {
	return "chore: release " + tag
}

// TagAnnotation returns the annotation message of the release tag.
func TagAnnotation(tag string) string {
	return "Release " + tag
}
