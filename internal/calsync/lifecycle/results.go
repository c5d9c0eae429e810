package lifecycle

import (
	"time"

	"github.com/goccy/go-json"

	"roomBooker/internal/models"
)

// Result is the outcome of enabling sync for one room.
type Result struct {
	RoomID         int64     `json:"room_id"`
	RoomEmail      string    `json:"room_email"`
	Success        bool      `json:"success"`
	Renewed        bool      `json:"renewed"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	Error          string    `json:"error,omitempty"`
}

func (r Result) fail(err error) Result {
	r.Success = false
	r.Error = err.Error()
	return r
}

type RoomError struct {
	RoomID    int64  `json:"room_id,omitempty"`
	RoomName  string `json:"room_name,omitempty"`
	RoomEmail string `json:"room_email,omitempty"`
	Error     string `json:"error"`
}

type Summary struct {
	Total   int         `json:"total"`
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Skipped int         `json:"skipped"`
	Errors  []RoomError `json:"errors"`
}

type RenewalReport struct {
	Checked   int         `json:"checked"`
	Renewed   int         `json:"renewed"`
	Recreated int         `json:"recreated"`
	Failed    int         `json:"failed"`
	Errors    []RoomError `json:"errors"`
}

// BestEffort records a provider call whose failure must not block local cleanup.
type BestEffort struct {
	Attempted bool
	Err       error
}

func (b BestEffort) Succeeded() bool {
	return b.Attempted && b.Err == nil
}

func (b BestEffort) MarshalJSON() ([]byte, error) {
	out := struct {
		Attempted bool   `json:"attempted"`
		Error     string `json:"error,omitempty"`
	}{Attempted: b.Attempted}
	if b.Err != nil {
		out.Error = b.Err.Error()
	}
	return json.Marshal(out)
}

type Removal struct {
	SubscriptionID int64      `json:"subscription_id"`
	RoomID         int64      `json:"room_id"`
	RoomEmail      string     `json:"room_email"`
	Remote         BestEffort `json:"remote"`
}

// View is a registry row as shown to operators.
type View struct {
	models.Subscription
	IsExpired bool `json:"is_expired"`
}
