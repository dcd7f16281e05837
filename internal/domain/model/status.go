package model

import "time"

// PollState tracks where the aggregator is within a poll cycle.
type PollState string

const (
	PollStateIdle       PollState = "idle"
	PollStateQuerying   PollState = "querying"
	PollStateFormatting PollState = "formatting"
	PollStateReady      PollState = "ready"
	PollStateFailed     PollState = "failed"
)

// DisplayStatus is the published, UI-facing view of password expiry.
// Each poll supersedes the previous value wholesale; subscribers always
// observe Text and AlertActive as a consistent pair.
type DisplayStatus struct {
	Text        string
	AlertActive bool
	Source      PasswordSource
	State       PollState
	CheckedAt   time.Time
}
