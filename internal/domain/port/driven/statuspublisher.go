package driven

import "github.com/finnroth/expiryd/internal/domain/model"

// StatusPublisher defines the driven port for broadcasting a freshly
// computed DisplayStatus to interested observers. Publish is called exactly
// once per completed poll, after the status is fully assembled, so
// observers never see a partially updated text/alert pair.
type StatusPublisher interface {
	Publish(status model.DisplayStatus)
}
