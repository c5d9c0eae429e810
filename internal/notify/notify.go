package notify

import (
	"context"
	"log/slog"
	"time"
)

const (
	TopicBookings      = "bookings.changed"
	TopicSubscriptions = "subscriptions.changed"
)

// Publisher fans changes out to whoever keeps derived views.
type Publisher interface {
	Publish(ctx context.Context, topic string, change Change) error
	Close() error
}

// Change is the payload fanned out after a ledger or registry mutation.
// Consumers only use it to invalidate their views.
type Change struct {
	Action     string    `json:"action"`
	BookingID  int64     `json:"booking_id,omitempty"`
	RoomID     int64     `json:"room_id,omitempty"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LogPublisher is used when no broker is configured: changes are only logged.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, topic string, change Change) error {
	p.log.Debug("change published",
		slog.String("topic", topic),
		slog.String("action", change.Action),
		slog.Int64("booking_id", change.BookingID),
		slog.Int64("room_id", change.RoomID),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
