package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from a channel and hands them to a sink.
type Worker struct {
	store  Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run persists events until ctx is cancelled or the inbox is closed. A failed
// append is logged and does not stop the worker.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to persist audit event",
					"case_id", event.CaseID,
					"action", event.Action,
					"error", err,
				)
			}
		}
	}
}
