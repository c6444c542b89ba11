package urlrewrite

import "errors"

// Configuration errors. They are fatal at setup time and must prevent the
// rewriter from being installed.
var (
	// ErrNoRuleTable is returned by [NewAnnotator] for a missing routing table.
	ErrNoRuleTable = errors.New("no routing rule table provided")

	// ErrNoPolicy is returned when no route policy is provided.
	ErrNoPolicy = errors.New("no route policy provided")

	// ErrNoHost is returned by [Annotator.Annotate] for an empty host.
	ErrNoHost = errors.New("no host provided for rule annotation")
)
