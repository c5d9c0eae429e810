package graph

import "time"

type EmailAddress struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
}

type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

type AttendeeStatus struct {
	Response string `json:"response"`
	Time     string `json:"time,omitempty"`
}

type Attendee struct {
	Type         string          `json:"type"`
	Status       *AttendeeStatus `json:"status,omitempty"`
	EmailAddress EmailAddress    `json:"emailAddress"`
}

// IsResource reports whether the attendee is a room or equipment resource.
func (a Attendee) IsResource() bool {
	return a.Type == "resource"
}

type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type OnlineMeetingInfo struct {
	JoinURL string `json:"joinUrl"`
}

// Event is the provider's view of a calendar event in a room mailbox.
type Event struct {
	ID                    string             `json:"id"`
	Subject               string             `json:"subject"`
	BodyPreview           string             `json:"bodyPreview"`
	Body                  *ItemBody          `json:"body,omitempty"`
	Start                 DateTimeTimeZone   `json:"start"`
	End                   DateTimeTimeZone   `json:"end"`
	IsCancelled           bool               `json:"isCancelled"`
	IsOnlineMeeting       bool               `json:"isOnlineMeeting"`
	OnlineMeetingProvider string             `json:"onlineMeetingProvider"`
	OnlineMeeting         *OnlineMeetingInfo `json:"onlineMeeting,omitempty"`
	Organizer             *Recipient         `json:"organizer,omitempty"`
	Attendees             []Attendee         `json:"attendees"`
}

// RoomResource is a room listed by the provider's places API.
type RoomResource struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Building     string `json:"building,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
}

// NewEvent describes an event to create in a room mailbox.
type NewEvent struct {
	Mailbox       string
	Subject       string
	Start         time.Time
	End           time.Time
	Body          string
	OnlineMeeting bool
	Attendees     []string
}

type CreatedEvent struct {
	ID      string
	JoinURL string
}

type NewSubscription struct {
	Mailbox         string
	NotificationURL string
	ClientState     string
}

// Subscription is the provider's record of a push subscription.
type Subscription struct {
	ID                 string
	Resource           string
	ExpirationDateTime time.Time
}

type subscriptionPayload struct {
	ID                 string `json:"id,omitempty"`
	ChangeType         string `json:"changeType,omitempty"`
	NotificationURL    string `json:"notificationUrl,omitempty"`
	Resource           string `json:"resource,omitempty"`
	ExpirationDateTime string `json:"expirationDateTime"`
	ClientState        string `json:"clientState,omitempty"`
}

type eventPayload struct {
	Subject               string           `json:"subject"`
	Body                  ItemBody         `json:"body"`
	Start                 DateTimeTimeZone `json:"start"`
	End                   DateTimeTimeZone `json:"end"`
	Attendees             []Attendee       `json:"attendees,omitempty"`
	IsOnlineMeeting       bool             `json:"isOnlineMeeting,omitempty"`
	OnlineMeetingProvider string           `json:"onlineMeetingProvider,omitempty"`
}

type page[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}
