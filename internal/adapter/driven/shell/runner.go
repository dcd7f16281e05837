// Package shell implements the CommandRunner port using os/exec.
package shell

import (
	"context"
	"os/exec"

	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommandRunner = Runner{}

// Runner executes external helpers via exec.CommandContext. Callers bound
// the process lifetime through ctx; a canceled or expired context kills the
// helper.
type Runner struct{}

// CombinedOutput runs the command and returns interleaved stdout and stderr.
// The output is returned alongside a non-nil error so exit failures still
// surface the helper's diagnostics.
func (Runner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
