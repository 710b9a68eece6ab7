package extraction

import "errors"

var (
	// ErrAgentUnreachable means the model endpoint could not be reached
	// after the configured retries.
	ErrAgentUnreachable = errors.New("extraction: agent unreachable")
)
