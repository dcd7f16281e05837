package driven

import (
	"context"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// ExpirySource defines the driven port for querying one identity backend.
// Implementations perform a single blocking lookup and return a normalized
// ExpiryInfo; they never retry, and failures propagate to the caller as-is.
type ExpirySource interface {
	// Check queries the backend for the calling user's password expiry.
	// A user who is not signed in is reported as data (SignedIn=false),
	// not as an error.
	Check(ctx context.Context) (model.ExpiryInfo, error)
}
