package models

import "time"

// VisitorEventType discriminates visit and leave telemetry events.
type VisitorEventType string

const (
	VisitorEventVisit VisitorEventType = "visit"
	VisitorEventLeave VisitorEventType = "leave"
)

// ValidVisitorEventType reports whether t is a recognized event type.
func ValidVisitorEventType(t string) bool {
	switch VisitorEventType(t) {
	case VisitorEventVisit, VisitorEventLeave:
		return true
	default:
		return false
	}
}

// VisitorEvent is one append-only telemetry row. The session id is a
// client-generated opaque token with no authentication meaning. Leave
// events are best-effort: they may never arrive, arrive late, or arrive
// duplicated, so leave counts are a lower bound on true exits.
type VisitorEvent struct {
	ID        string           `db:"id" json:"id"`
	SessionID string           `db:"session_id" json:"session_id"`
	EventType VisitorEventType `db:"event_type" json:"event_type"`
	Page      string           `db:"page" json:"page"`
	UserAgent string           `db:"user_agent" json:"user_agent"`
	Referrer  string           `db:"referrer" json:"referrer"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
