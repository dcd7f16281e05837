// Package kerberos implements the ExpirySource port against the platform
// SSO command-line helper.
package kerberos

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// helperName is the SSO extension's status helper. Invoked with -j it emits
// a JSON payload on stdout.
const helperName = "app-sso"

// Compile-time interface satisfaction check.
var _ driven.ExpirySource = (*Source)(nil)

// Source queries the Kerberos SSO extension for the configured realm. The
// helper is an external process with no latency guarantee, so every
// invocation is bounded by a timeout.
type Source struct {
	runner  driven.CommandRunner
	realm   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewSource creates a Source for the given realm. timeout bounds each
// helper invocation.
func NewSource(runner driven.CommandRunner, realm string, timeout time.Duration, logger *slog.Logger) *Source {
	return &Source{
		runner:  runner,
		realm:   realm,
		timeout: timeout,
		logger:  logger,
	}
}

// helperPayload is the documented shape of the helper's JSON output. Both
// fields are optional: no userName means nobody is signed in for the realm,
// and no passwordExpiresDate means the password never expires.
type helperPayload struct {
	PasswordExpiresDate string `json:"passwordExpiresDate"`
	UserName            string `json:"userName"`
}

// Check invokes the helper for the realm and maps its payload. A non-zero
// exit or malformed JSON surfaces as a BackendFailureError carrying the raw
// combined output.
func (s *Source) Check(ctx context.Context) (model.ExpiryInfo, error) {
	if s.realm == "" {
		return model.ExpiryInfo{}, fmt.Errorf("%w: kerberos realm is empty", model.ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.runner.CombinedOutput(ctx, helperName, "-j", "-i", s.realm)
	if err != nil {
		return model.ExpiryInfo{}, &model.BackendFailureError{
			Source: model.SourceKerberosSSO,
			Output: string(out),
			Err:    fmt.Errorf("running %s for realm %q: %w", helperName, s.realm, err),
		}
	}

	var payload helperPayload
	if err := json.Unmarshal(out, &payload); err != nil {
		return model.ExpiryInfo{}, &model.BackendFailureError{
			Source: model.SourceKerberosSSO,
			Output: string(out),
			Err:    fmt.Errorf("parsing %s output: %w", helperName, err),
		}
	}

	if payload.UserName == "" {
		s.logger.Debug("no user signed in for realm", "realm", s.realm)
		return model.ExpiryInfo{}, nil
	}

	info := model.ExpiryInfo{SignedIn: true}
	if payload.PasswordExpiresDate == "" {
		info.NeverExpires = true
		return info, nil
	}

	expires, err := time.Parse(time.RFC3339, payload.PasswordExpiresDate)
	if err != nil {
		return model.ExpiryInfo{}, &model.BackendFailureError{
			Source: model.SourceKerberosSSO,
			Output: string(out),
			Err:    fmt.Errorf("parsing expiry timestamp %q: %w", payload.PasswordExpiresDate, err),
		}
	}
	info.ExpiryDate = &expires
	return info, nil
}
