package prefstore

import (
	"context"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// Settings domains and keys owned by the backend vendors.
const (
	jamfDomain    = "com.jamf.connect.state"
	jamfSignedIn  = "PasswordCurrent"
	jamfExpiresAt = "PasswordExpiration"

	nomadDomain    = "com.trusourcelabs.NoMAD"
	nomadSignedIn  = "SignedIn"
	nomadExpiresAt = "LastPasswordExpireDate"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.ExpirySource = (*JamfConnectSource)(nil)
	_ driven.ExpirySource = (*NomadSource)(nil)
)

// JamfConnectSource reads the Jamf Connect state domain.
type JamfConnectSource struct {
	store driven.SettingsStore
}

// NewJamfConnectSource creates a JamfConnectSource over the given store.
func NewJamfConnectSource(store driven.SettingsStore) *JamfConnectSource {
	return &JamfConnectSource{store: store}
}

// Check reads the sign-in flag and expiry timestamp from the Jamf Connect
// state domain.
func (s *JamfConnectSource) Check(ctx context.Context) (model.ExpiryInfo, error) {
	return checkSettings(ctx, s.store, jamfDomain, jamfSignedIn, jamfExpiresAt)
}

// NomadSource reads the NoMAD preferences domain.
type NomadSource struct {
	store driven.SettingsStore
}

// NewNomadSource creates a NomadSource over the given store.
func NewNomadSource(store driven.SettingsStore) *NomadSource {
	return &NomadSource{store: store}
}

// Check reads the sign-in flag and expiry timestamp from the NoMAD domain.
func (s *NomadSource) Check(ctx context.Context) (model.ExpiryInfo, error) {
	return checkSettings(ctx, s.store, nomadDomain, nomadSignedIn, nomadExpiresAt)
}

// checkSettings applies the shared settings-store contract: not signed in
// reports only SignedIn=false, signed in without a timestamp means the
// password never expires, and a present timestamp becomes ExpiryDate.
func checkSettings(ctx context.Context, store driven.SettingsStore, domain, signedInKey, expiryKey string) (model.ExpiryInfo, error) {
	values, err := store.Export(ctx, domain)
	if err != nil {
		return model.ExpiryInfo{}, err
	}

	if signedIn, _ := values[signedInKey].(bool); !signedIn {
		return model.ExpiryInfo{}, nil
	}

	info := model.ExpiryInfo{SignedIn: true}
	if ts, ok := values[expiryKey].(time.Time); ok {
		expires := ts
		info.ExpiryDate = &expires
	} else {
		info.NeverExpires = true
	}
	return info, nil
}
