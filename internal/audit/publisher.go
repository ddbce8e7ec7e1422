package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher captures structured audit events. It is append-only and uses the
// Store abstraction for persistence so tests can swap sinks easily.
//
// Emission is fail-open: the screening verdict is the compliance artifact,
// the audit stream is operational, so a sink failure is logged and never
// blocks the calling operation.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, logger: logger}
}

func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil || p.store == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := p.store.Append(ctx, event); err != nil && p.logger != nil {
		p.logger.ErrorContext(ctx, "audit append failed",
			"action", event.Action,
			"category", event.Category,
			"error", err,
		)
	}
}
