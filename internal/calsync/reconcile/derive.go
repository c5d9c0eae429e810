package reconcile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"roomBooker/internal/graph"
	"roomBooker/internal/models"
)

var ErrInvalidEventTimes = errors.New("event end is not after start")

var meetingLabels = map[string]string{
	"teamsforbusiness": models.MeetingTypeTeams,
	"skypeforbusiness": models.MeetingTypeSkype,
	"skypeforconsumer": models.MeetingTypeSkypeConsumer,
}

// MeetingType maps the provider's online-meeting flag and provider name to
// the label stored on bookings.
func MeetingType(online bool, provider string) string {
	if !online {
		return models.MeetingTypeNone
	}
	if label, ok := meetingLabels[strings.ToLower(provider)]; ok {
		return label
	}
	return models.MeetingTypeOnline
}

// derived holds the booking fields computed from a provider event.
type derived struct {
	eventID        string
	title          string
	description    string
	start          time.Time
	end            time.Time
	meetingType    string
	attendees      []string
	organizerName  *string
	organizerEmail *string
}

func derive(ev *graph.Event, mailbox string) (derived, error) {
	start, err := graph.ParseDateTime(ev.Start.DateTime)
	if err != nil {
		return derived{}, fmt.Errorf("event start: %w", err)
	}
	end, err := graph.ParseDateTime(ev.End.DateTime)
	if err != nil {
		return derived{}, fmt.Errorf("event end: %w", err)
	}
	if !end.After(start) {
		return derived{}, ErrInvalidEventTimes
	}

	d := derived{
		eventID:     ev.ID,
		title:       ev.Subject,
		description: ev.BodyPreview,
		start:       start,
		end:         end,
		meetingType: MeetingType(ev.IsOnlineMeeting, ev.OnlineMeetingProvider),
		attendees:   attendeesOf(ev, mailbox),
	}

	if ev.Organizer != nil {
		addr := strings.TrimSpace(ev.Organizer.EmailAddress.Address)
		if addr != "" && !strings.EqualFold(addr, mailbox) {
			d.organizerEmail = &addr
			if name := strings.TrimSpace(ev.Organizer.EmailAddress.Name); name != "" {
				d.organizerName = &name
			}
		}
	}

	return d, nil
}

// attendeesOf lists attendee addresses without resources and the room itself.
func attendeesOf(ev *graph.Event, mailbox string) []string {
	seen := make(map[string]struct{}, len(ev.Attendees))
	out := make([]string, 0, len(ev.Attendees))

	for _, a := range ev.Attendees {
		addr := strings.TrimSpace(a.EmailAddress.Address)
		if addr == "" || a.IsResource() || strings.EqualFold(addr, mailbox) {
			continue
		}

		key := strings.ToLower(addr)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}

	return out
}

func (d derived) newBooking(roomID int64) models.NewBooking {
	extID := d.eventID
	return models.NewBooking{
		RoomID:          roomID,
		Title:           d.title,
		Description:     d.description,
		StartTime:       d.start,
		EndTime:         d.end,
		Status:          models.BookingConfirmed,
		MeetingType:     d.meetingType,
		Attendees:       d.attendees,
		ExternalEventID: &extID,
		BookedForName:   d.organizerName,
		BookedForEmail:  d.organizerEmail,
	}
}

// update builds the partial update for a linked booking. An empty attendee
// list leaves the stored attendees alone.
func (d derived) update(keepWindow bool) models.ExternalUpdate {
	upd := models.ExternalUpdate{
		Title:          &d.title,
		MeetingType:    &d.meetingType,
		BookedForName:  d.organizerName,
		BookedForEmail: d.organizerEmail,
	}
	if !keepWindow {
		upd.StartTime = &d.start
		upd.EndTime = &d.end
	}
	if len(d.attendees) > 0 {
		upd.Attendees = d.attendees
	}
	return upd
}

// matches reports whether applying d to b would change nothing.
func (d derived) matches(b *models.Booking) bool {
	if b.Title != d.title || b.MeetingType != d.meetingType {
		return false
	}
	if !b.StartTime.Equal(d.start) || !b.EndTime.Equal(d.end) {
		return false
	}
	if len(d.attendees) > 0 && !slices.Equal(b.Attendees, d.attendees) {
		return false
	}
	if d.organizerEmail != nil && (b.BookedForEmail == nil || *b.BookedForEmail != *d.organizerEmail) {
		return false
	}
	if d.organizerName != nil && (b.BookedForName == nil || *b.BookedForName != *d.organizerName) {
		return false
	}
	return true
}

func (d derived) windowChanged(b *models.Booking) bool {
	return !b.StartTime.Equal(d.start) || !b.EndTime.Equal(d.end)
}
