package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingPending   BookingStatus = "pending"
)

// Meeting-type labels stored on bookings. MeetingTypeNone marks a booking
// without an online meeting.
const (
	MeetingTypeNone          = "none"
	MeetingTypeTeams         = "Teams Meeting"
	MeetingTypeSkype         = "Skype Meeting"
	MeetingTypeSkypeConsumer = "Skype"
	MeetingTypeOnline        = "Online Meeting"
)

type Booking struct {
	ID              int64         `json:"id"`
	RoomID          int64         `json:"room_id"`
	UserID          *int64        `json:"user_id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	Status          BookingStatus `json:"status"`
	MeetingType     string        `json:"meeting_type"`
	Attendees       []string      `json:"attendees"`
	ExternalEventID *string       `json:"external_event_id"`
	BookedForName   *string       `json:"booked_for_name"`
	BookedForEmail  *string       `json:"booked_for_email"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Overlaps reports whether two bookings intersect as half-open [start,end) intervals.
func (b Booking) Overlaps(o Booking) bool {
	return b.StartTime.Before(o.EndTime) && o.StartTime.Before(b.EndTime)
}

// NewBooking is the insert payload for the ledger. Status defaults to confirmed.
type NewBooking struct {
	RoomID          int64
	UserID          *int64
	Title           string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Status          BookingStatus
	MeetingType     string
	Attendees       []string
	ExternalEventID *string
	BookedForName   *string
	BookedForEmail  *string
}

// ExternalUpdate carries the fields the calendar reconciler may change on an
// existing booking. Nil fields are left untouched; status is never changed.
type ExternalUpdate struct {
	Title          *string
	StartTime      *time.Time
	EndTime        *time.Time
	MeetingType    *string
	Attendees      []string
	BookedForName  *string
	BookedForEmail *string
}
