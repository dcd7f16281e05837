package model

import "fmt"

// PasswordSource identifies which identity backend password expiry is read from.
type PasswordSource string

const (
	SourceLocalDirectory PasswordSource = "local"
	SourceJamfConnect    PasswordSource = "jamfconnect"
	SourceKerberosSSO    PasswordSource = "kerberos"
	SourceNomad          PasswordSource = "nomad"
	SourceUnknown        PasswordSource = "unknown"
)

// ParsePasswordSource maps a configuration string to a PasswordSource.
// Unrecognized values return SourceUnknown and an error.
func ParsePasswordSource(s string) (PasswordSource, error) {
	switch PasswordSource(s) {
	case SourceLocalDirectory, SourceJamfConnect, SourceKerberosSSO, SourceNomad:
		return PasswordSource(s), nil
	}
	return SourceUnknown, fmt.Errorf("unknown password source %q", s)
}
