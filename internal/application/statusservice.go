// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// refreshRequest represents a manual refresh trigger.
type refreshRequest struct {
	done chan model.DisplayStatus
}

// StatusService aggregates password expiry status: it selects the adapter
// for the configured backend, formats the result, derives the alert flag
// against the configured threshold, and publishes the new DisplayStatus.
type StatusService struct {
	sources   map[model.PasswordSource]driven.ExpirySource
	publisher driven.StatusPublisher
	source    model.PasswordSource
	threshold int
	interval  time.Duration
	logger    *slog.Logger
	refreshCh chan refreshRequest

	// pollMu serializes poll cycles so overlapping triggers cannot race on
	// the published status; the last completed poll wins.
	pollMu sync.Mutex

	mu      sync.RWMutex
	state   model.PollState
	current model.DisplayStatus
}

// NewStatusService creates a StatusService. sources maps each configured
// backend to its adapter; activeSource selects which one a poll uses.
func NewStatusService(
	sources map[model.PasswordSource]driven.ExpirySource,
	publisher driven.StatusPublisher,
	activeSource model.PasswordSource,
	alertThresholdDays int,
	interval time.Duration,
	logger *slog.Logger,
) *StatusService {
	return &StatusService{
		sources:   sources,
		publisher: publisher,
		source:    activeSource,
		threshold: alertThresholdDays,
		interval:  interval,
		logger:    logger,
		refreshCh: make(chan refreshRequest),
		state:     model.PollStateIdle,
		current: model.DisplayStatus{
			Text:   TextUnknown,
			Source: activeSource,
			State:  model.PollStateIdle,
		},
	}
}

// Start begins the polling loop. It runs an immediate poll, then polls on
// the configured interval, and services manual refresh requests in between.
// Start blocks until the context is canceled.
func (s *StatusService) Start(ctx context.Context) {
	s.Poll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("status service stopped")
			return
		case <-ticker.C:
			s.Poll(ctx)
		case req := <-s.refreshCh:
			req.done <- s.Poll(ctx)
		}
	}
}

// Refresh triggers an immediate poll on the service loop, bypassing the
// interval, and blocks until that poll completes or ctx is canceled.
func (s *StatusService) Refresh(ctx context.Context) (model.DisplayStatus, error) {
	req := refreshRequest{done: make(chan model.DisplayStatus, 1)}

	select {
	case s.refreshCh <- req:
	case <-ctx.Done():
		return model.DisplayStatus{}, ctx.Err()
	}

	select {
	case status := <-req.done:
		return status, nil
	case <-ctx.Done():
		return model.DisplayStatus{}, ctx.Err()
	}
}

// Current returns the most recently published DisplayStatus. Before the
// first poll completes it reports the idle placeholder.
func (s *StatusService) Current() model.DisplayStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// State returns the live poll-cycle state. It can lead Current().State
// while a poll is in flight (querying, formatting).
func (s *StatusService) State() model.PollState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Poll runs one poll cycle: query the active backend, format the result,
// derive the alert flag, publish. On adapter failure the status text becomes
// a diagnostic string and the alert flag keeps its previous value rather
// than being cleared (sticky alert); the exposed state turns to failed so
// clients can render the staleness.
func (s *StatusService) Poll(ctx context.Context) model.DisplayStatus {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()

	start := time.Now()
	s.setState(model.PollStateQuerying)

	src, ok := s.sources[s.source]
	var (
		info model.ExpiryInfo
		err  error
	)
	if !ok {
		err = fmt.Errorf("%w: no adapter for source %q", model.ErrNotConfigured, s.source)
	} else {
		info, err = src.Check(ctx)
	}
	if err != nil {
		pollsTotal.WithLabelValues("error").Inc()
		pollDuration.Observe(time.Since(start).Seconds())
		return s.fail(err)
	}

	s.setState(model.PollStateFormatting)
	now := time.Now()
	status := model.DisplayStatus{
		Text:        FormatStatus(info, now),
		AlertActive: s.alertActive(info, now),
		Source:      s.source,
		State:       model.PollStateReady,
		CheckedAt:   now,
	}
	s.commit(status)

	pollsTotal.WithLabelValues("ok").Inc()
	pollDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("poll complete",
		"source", s.source,
		"text", status.Text,
		"alert_active", status.AlertActive,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return status
}

// alertActive reports whether the remaining duration crosses the alert
// threshold. Never true for an unauthenticated user, a password that never
// expires, or a disabled (zero) threshold.
func (s *StatusService) alertActive(info model.ExpiryInfo, now time.Time) bool {
	if s.threshold <= 0 || info.NeverExpires || !info.SignedIn {
		return false
	}
	days, ok := info.DaysRemaining(now)
	return ok && days >= 0 && days <= int64(s.threshold)
}

// fail publishes a failed status that carries the diagnostic text but keeps
// the prior alert flag.
func (s *StatusService) fail(err error) model.DisplayStatus {
	s.mu.Lock()
	status := model.DisplayStatus{
		Text:        "Status check failed: " + err.Error(),
		AlertActive: s.current.AlertActive,
		Source:      s.source,
		State:       model.PollStateFailed,
		CheckedAt:   time.Now(),
	}
	s.current = status
	s.state = model.PollStateFailed
	s.mu.Unlock()

	s.logger.Error("poll failed", "source", s.source, "error", err)
	s.publisher.Publish(status)
	return status
}

// commit stores and publishes a ready status.
func (s *StatusService) commit(status model.DisplayStatus) {
	s.mu.Lock()
	s.current = status
	s.state = status.State
	s.mu.Unlock()

	if status.AlertActive {
		alertGauge.Set(1)
	} else {
		alertGauge.Set(0)
	}

	s.publisher.Publish(status)
}

func (s *StatusService) setState(state model.PollState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
