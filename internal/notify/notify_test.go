package notify

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestLogPublisher(t *testing.T) {
	t.Parallel()

	p := NewLogPublisher(slogdiscard.NewDiscardLogger())

	err := p.Publish(context.Background(), TopicBookings, Change{Action: "created", BookingID: 1})
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestChangeEncoding(t *testing.T) {
	t.Parallel()

	c := Change{
		Action:     "cancelled",
		BookingID:  7,
		RoomID:     3,
		Source:     "calendar_sync",
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	b, err := json.Marshal(c)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"action": "cancelled",
		"booking_id": 7,
		"room_id": 3,
		"source": "calendar_sync",
		"occurred_at": "2024-01-01T00:00:00Z"
	}`, string(b))
}
