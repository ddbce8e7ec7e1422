// Package audit captures the trail of screening decisions and watchlist
// mutations. Events carry a hashed subject identifier rather than the raw
// national id so the stream holds no PII. The screening verdict itself is
// owned by the caller; audit records that a decision was made and by what
// rule outcome, not the result document.
package audit

import (
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance,
	// such as screening decisions that gate permit approval.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring,
	// such as watchlist mutations and auth failures.
	CategorySecurity EventCategory = "security"
)

// Action identifies what happened.
type Action string

const (
	ActionScreeningCompleted    Action = "screening_completed"
	ActionWatchlistEntryAdded   Action = "watchlist_entry_added"
	ActionWatchlistDeactivated  Action = "watchlist_entries_deactivated"
	ActionWatchlistLookupFailed Action = "watchlist_lookup_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Action    Action        `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
	// SubjectIDHash is a SHA-256 hash of the national id the event concerns.
	SubjectIDHash string `json:"subject_id_hash"`
	// ActorID tracks who performed the action for admin operations.
	ActorID string `json:"actor_id,omitempty"`
	// RequestID is the correlation id from the HTTP request context.
	RequestID string `json:"request_id,omitempty"`
	// Decision and Reason summarize the outcome for decision events,
	// e.g. Decision "HIGH" with Reason "score=65 flags=2".
	Decision string `json:"decision,omitempty"`
	Reason   string `json:"reason,omitempty"`
	// ClientIP and UserAgent enrich security events.
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}
