package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured indicates the active source is missing required
// configuration (for example an empty Kerberos realm).
var ErrNotConfigured = errors.New("source not configured")

// ErrLookupFailed indicates the directory service query failed or returned
// a record that does not belong to the calling user.
var ErrLookupFailed = errors.New("directory lookup failed")

// BackendFailureError reports a failed backend invocation: a helper process
// exiting non-zero, unparseable helper output, or an unreadable settings
// store. Output carries the raw backend output for diagnostics.
type BackendFailureError struct {
	Source PasswordSource
	Output string
	Err    error
}

func (e *BackendFailureError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s backend failure: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s backend failure: %v: %s", e.Source, e.Err, out)
}

func (e *BackendFailureError) Unwrap() error {
	return e.Err
}
