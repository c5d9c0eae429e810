package models

import (
	"encoding/json"
	"time"
)

const (
	AuditSourceUser         = "user"
	AuditSourceCalendarSync = "calendar_sync"
)

const (
	AuditBookingCreated   = "booking.created"
	AuditBookingUpdated   = "booking.updated"
	AuditBookingCancelled = "booking.cancelled"
)

// AuditEntry records a ledger mutation. ActorUserID is nil for system actions.
type AuditEntry struct {
	ID          int64           `json:"id"`
	BookingID   int64           `json:"booking_id"`
	Action      string          `json:"action"`
	ActorUserID *int64          `json:"actor_user_id"`
	Source      string          `json:"source"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
