package orchestrator

// DefaultRemote is pushed to when no remote is given
const DefaultRemote = "origin"

// Output templates
const (
	successTemplate = "\nDone: pushed branch %s and tag %s.\n" +
		"The automated release pipeline picks up the tag push and publishes the release.\n"
	dryRunSuccessTemplate = "\nDry run complete: would push branch %s and tag %s.\n"
)
