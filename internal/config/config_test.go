package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// allConfigKeys lists every EXPIRYD_ env var that Load() reads.
var allConfigKeys = []string{
	"EXPIRYD_SOURCE",
	"EXPIRYD_KERBEROS_REALM",
	"EXPIRYD_ALERT_THRESHOLD_DAYS",
	"EXPIRYD_POLL_INTERVAL",
	"EXPIRYD_HELPER_TIMEOUT",
	"EXPIRYD_LISTEN_ADDR",
}

// isolateConfigEnv saves and unsets all EXPIRYD_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "kerberos")
	t.Setenv("EXPIRYD_KERBEROS_REALM", "CORP.EXAMPLE.COM")
	t.Setenv("EXPIRYD_ALERT_THRESHOLD_DAYS", "7")
	t.Setenv("EXPIRYD_POLL_INTERVAL", "10m")
	t.Setenv("EXPIRYD_HELPER_TIMEOUT", "3s")
	t.Setenv("EXPIRYD_LISTEN_ADDR", "0.0.0.0:9090")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, model.SourceKerberosSSO, cfg.Source)
	assert.Equal(t, "CORP.EXAMPLE.COM", cfg.KerberosRealm)
	assert.Equal(t, 7, cfg.AlertThresholdDays)
	assert.Equal(t, 10*time.Minute, cfg.PollInterval)
	assert.Equal(t, 3*time.Second, cfg.HelperTimeout)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "local")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, model.SourceLocalDirectory, cfg.Source)
	assert.Equal(t, 14, cfg.AlertThresholdDays)
	assert.Equal(t, 15*time.Minute, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.HelperTimeout)
	assert.Equal(t, "127.0.0.1:8265", cfg.ListenAddr)
}

func TestLoad_MissingSource(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPIRYD_SOURCE")
}

func TestLoad_UnknownSource(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "ldap")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_KerberosRequiresRealm(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "kerberos")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EXPIRYD_KERBEROS_REALM")
}

func TestLoad_RealmNotRequiredForOtherSources(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "nomad")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, model.SourceNomad, cfg.Source)
	assert.Empty(t, cfg.KerberosRealm)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "local")

	for _, bad := range []string{"-1", "soon", "1.5"} {
		t.Setenv("EXPIRYD_ALERT_THRESHOLD_DAYS", bad)
		_, err := Load()
		assert.Error(t, err, "threshold %q must be rejected", bad)
	}
}

func TestLoad_InvalidInterval(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "local")

	// A zero or negative interval would panic the poll ticker, so Load
	// must reject it alongside unparseable values.
	for _, bad := range []string{"often", "0s", "-1m"} {
		t.Setenv("EXPIRYD_POLL_INTERVAL", bad)
		_, err := Load()
		assert.Error(t, err, "interval %q must be rejected", bad)
	}
}

func TestLoad_InvalidHelperTimeout(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "local")

	for _, bad := range []string{"quick", "0s", "-5s"} {
		t.Setenv("EXPIRYD_HELPER_TIMEOUT", bad)
		_, err := Load()
		assert.Error(t, err, "timeout %q must be rejected", bad)
	}
}

func TestLoad_ZeroThresholdAllowed(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("EXPIRYD_SOURCE", "local")
	t.Setenv("EXPIRYD_ALERT_THRESHOLD_DAYS", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.AlertThresholdDays)
}
