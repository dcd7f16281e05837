package driven

import "context"

// SettingsStore defines the driven port for reading another application's
// namespaced preference domain. The stores are owned by the backend vendors
// (Jamf Connect, NoMAD); this side only ever reads them.
type SettingsStore interface {
	// Export returns every key in the given preferences domain. A domain
	// that does not exist yields an empty map, not an error: an absent
	// suite simply means the user never signed in to that backend.
	Export(ctx context.Context, domain string) (map[string]any, error)
}
