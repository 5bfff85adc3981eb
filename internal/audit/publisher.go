package audit

import (
	"context"
	"log/slog"

	"ethub/pkg/platform/middleware/metadata"
	"ethub/pkg/requestcontext"
)

// Publisher hands events to a background Worker through a buffered channel.
// Emit never blocks the request: when the buffer is full the event is logged
// and dropped.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher returns a publisher and the channel its Worker should drain.
func NewPublisher(buffer int, logger *slog.Logger) (*Publisher, <-chan Event) {
	if logger == nil {
		logger = slog.Default()
	}
	ch := make(chan Event, buffer)
	return &Publisher{inbox: ch, logger: logger}, ch
}

func (p *Publisher) Emit(ctx context.Context, base Event) {
	if base.Timestamp.IsZero() {
		base.Timestamp = requestcontext.Now(ctx)
	}
	if base.RequestID == "" {
		base.RequestID = requestcontext.RequestID(ctx)
	}
	if base.Device == "" {
		base.Device = metadata.GetDevice(ctx)
	}
	select {
	case p.inbox <- base:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"case_id", base.CaseID,
			"action", base.Action,
			"request_id", base.RequestID,
		)
	}
}

// Close stops accepting events; the worker drains what is buffered.
func (p *Publisher) Close() {
	close(p.inbox)
}
