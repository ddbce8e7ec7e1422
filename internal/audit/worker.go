package audit

import (
	"context"
	"errors"
	"log/slog"
)

// ChannelStore hands events to an inbox channel for a Worker to persist.
// Append never blocks the caller: when the inbox is full the event is
// dropped and an error returned for the publisher to log.
type ChannelStore struct {
	inbox chan<- Event
}

func NewChannelStore(inbox chan<- Event) *ChannelStore {
	return &ChannelStore{inbox: inbox}
}

func (s *ChannelStore) Append(_ context.Context, event Event) error {
	select {
	case s.inbox <- event:
		return nil
	default:
		return errors.New("audit inbox full, event dropped")
	}
}

// Worker drains audit events from a channel into a store. It decouples
// emission from persistence so request handling never blocks on the sink.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil && w.logger != nil {
				w.logger.ErrorContext(ctx, "audit worker append failed",
					"action", event.Action,
					"error", err,
				)
			}
		}
	}
}
