// Package prefstore implements the SettingsStore port over exported
// preference domains, plus the ExpirySource adapters for the backends that
// publish their sign-in state through those domains.
package prefstore

import (
	"context"
	"fmt"
	"strings"

	"howett.net/plist"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SettingsStore = (*DefaultsStore)(nil)

// DefaultsStore reads a preference domain by exporting it as a property
// list. The domains belong to other applications and are only ever read.
type DefaultsStore struct {
	runner driven.CommandRunner
}

// NewDefaultsStore creates a DefaultsStore backed by the given runner.
func NewDefaultsStore(runner driven.CommandRunner) *DefaultsStore {
	return &DefaultsStore{runner: runner}
}

// Export returns all keys of the domain. A domain that has never been
// written yields an empty map, which callers read as "not signed in".
func (s *DefaultsStore) Export(ctx context.Context, domain string) (map[string]any, error) {
	out, err := s.runner.CombinedOutput(ctx, "defaults", "export", domain, "-")
	if err != nil {
		if strings.Contains(string(out), "does not exist") {
			return map[string]any{}, nil
		}
		return nil, &model.BackendFailureError{
			Source: model.SourceUnknown,
			Output: string(out),
			Err:    fmt.Errorf("exporting domain %q: %w", domain, err),
		}
	}

	var values map[string]any
	if _, err := plist.Unmarshal(out, &values); err != nil {
		return nil, &model.BackendFailureError{
			Source: model.SourceUnknown,
			Output: string(out),
			Err:    fmt.Errorf("decoding domain %q: %w", domain, err),
		}
	}
	return values, nil
}
