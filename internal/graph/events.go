package graph

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const (
	onlineMeetingProviderTeams = "teamsForBusiness"
	eventSelect                = "id,subject,bodyPreview,start,end,isCancelled,isOnlineMeeting," +
		"onlineMeetingProvider,onlineMeeting,organizer,attendees"
)

func mailboxPath(mailbox string) string {
	return "/users/" + url.PathEscape(mailbox)
}

// GetEvent fetches the full current state of an event, attendee responses included.
func (c *Client) GetEvent(ctx context.Context, mailbox, eventID string) (*Event, error) {
	path := mailboxPath(mailbox) + "/events/" + url.PathEscape(eventID) + "?$select=" + eventSelect

	var ev Event
	if err := c.do(ctx, http.MethodGet, path, nil, &ev, utcPreference()); err != nil {
		return nil, err
	}

	return &ev, nil
}

// ListEvents returns every event in the mailbox's calendar view for [start, end).
func (c *Client) ListEvents(ctx context.Context, mailbox string, start, end time.Time) ([]Event, error) {
	params := url.Values{}
	params.Set("startDateTime", start.UTC().Format(time.RFC3339))
	params.Set("endDateTime", end.UTC().Format(time.RFC3339))
	params.Set("$select", eventSelect)
	params.Set("$top", "100")

	path := mailboxPath(mailbox) + "/calendarView?" + params.Encode()

	return collect[Event](ctx, c, path, utcPreference())
}

// CreateEvent books an event in the room mailbox. When an online meeting is
// requested the returned JoinURL carries the meeting link.
func (c *Client) CreateEvent(ctx context.Context, ne NewEvent) (*CreatedEvent, error) {
	payload := eventPayload{
		Subject: ne.Subject,
		Body:    ItemBody{ContentType: "text", Content: ne.Body},
		Start:   DateTimeTimeZone{DateTime: formatDateTime(ne.Start), TimeZone: "UTC"},
		End:     DateTimeTimeZone{DateTime: formatDateTime(ne.End), TimeZone: "UTC"},
	}

	for _, email := range ne.Attendees {
		payload.Attendees = append(payload.Attendees, Attendee{
			Type:         "required",
			EmailAddress: EmailAddress{Address: email},
		})
	}

	if ne.OnlineMeeting {
		payload.IsOnlineMeeting = true
		payload.OnlineMeetingProvider = onlineMeetingProviderTeams
	}

	var ev Event
	if err := c.do(ctx, http.MethodPost, mailboxPath(ne.Mailbox)+"/events", payload, &ev, nil); err != nil {
		return nil, err
	}

	created := &CreatedEvent{ID: ev.ID}
	if ne.OnlineMeeting && ev.OnlineMeeting != nil {
		created.JoinURL = ev.OnlineMeeting.JoinURL
	}

	return created, nil
}

// CancelEvent removes the event from the room mailbox.
func (c *Client) CancelEvent(ctx context.Context, mailbox, eventID string) error {
	return c.do(ctx, http.MethodDelete, mailboxPath(mailbox)+"/events/"+url.PathEscape(eventID), nil, nil, nil)
}
