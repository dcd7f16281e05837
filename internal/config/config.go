// Package config loads daemon configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// Config holds the daemon configuration loaded from environment variables.
type Config struct {
	Source             model.PasswordSource
	KerberosRealm      string
	AlertThresholdDays int
	PollInterval       time.Duration
	HelperTimeout      time.Duration
	ListenAddr         string
}

// Load reads configuration from environment variables and returns a
// validated Config. EXPIRYD_SOURCE is required (local, jamfconnect,
// kerberos, or nomad), and EXPIRYD_KERBEROS_REALM is required when the
// source is kerberos. Optional variables with defaults:
// EXPIRYD_ALERT_THRESHOLD_DAYS (14; 0 disables the alert),
// EXPIRYD_POLL_INTERVAL (15m) and EXPIRYD_HELPER_TIMEOUT (5s), both of
// which must be positive durations, and EXPIRYD_LISTEN_ADDR
// (127.0.0.1:8265).
func Load() (*Config, error) {
	raw := os.Getenv("EXPIRYD_SOURCE")
	if raw == "" {
		return nil, errors.New("EXPIRYD_SOURCE is required (local, jamfconnect, kerberos, or nomad)")
	}
	source, err := model.ParsePasswordSource(raw)
	if err != nil {
		return nil, fmt.Errorf("EXPIRYD_SOURCE: %w", err)
	}

	realm := os.Getenv("EXPIRYD_KERBEROS_REALM")
	if source == model.SourceKerberosSSO && realm == "" {
		return nil, errors.New("EXPIRYD_KERBEROS_REALM is required when EXPIRYD_SOURCE=kerberos")
	}

	threshold := 14
	if v, ok := os.LookupEnv("EXPIRYD_ALERT_THRESHOLD_DAYS"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("EXPIRYD_ALERT_THRESHOLD_DAYS has invalid value %q: want integer >= 0", v)
		}
		threshold = parsed
	}

	pollInterval := 15 * time.Minute
	if v, ok := os.LookupEnv("EXPIRYD_POLL_INTERVAL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("EXPIRYD_POLL_INTERVAL has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("EXPIRYD_POLL_INTERVAL has invalid value %q: want duration > 0", v)
		}
		pollInterval = parsed
	}

	helperTimeout := 5 * time.Second
	if v, ok := os.LookupEnv("EXPIRYD_HELPER_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("EXPIRYD_HELPER_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("EXPIRYD_HELPER_TIMEOUT has invalid value %q: want duration > 0", v)
		}
		helperTimeout = parsed
	}

	listenAddr := "127.0.0.1:8265"
	if v, ok := os.LookupEnv("EXPIRYD_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	return &Config{
		Source:             source,
		KerberosRealm:      realm,
		AlertThresholdDays: threshold,
		PollInterval:       pollInterval,
		HelperTimeout:      helperTimeout,
		ListenAddr:         listenAddr,
	}, nil
}
