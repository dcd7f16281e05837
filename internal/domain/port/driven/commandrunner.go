package driven

import "context"

// CommandRunner defines the driven port for invoking an external helper
// process. Adapters depend on this rather than os/exec directly so their
// parsing logic can be tested without spawning processes.
type CommandRunner interface {
	// CombinedOutput runs the named command and returns its interleaved
	// stdout and stderr. The returned output is valid even when err is
	// non-nil, so callers can surface it for diagnostics.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}
