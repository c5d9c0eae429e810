package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomBooker/internal/graph"
)

func TestMeetingType(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		online   bool
		provider string
		want     string
	}{
		{name: "Teams", online: true, provider: "teamsForBusiness", want: "Teams Meeting"},
		{name: "Skype for Business", online: true, provider: "skypeForBusiness", want: "Skype Meeting"},
		{name: "Skype consumer", online: true, provider: "skypeForConsumer", want: "Skype"},
		{name: "Unknown provider", online: true, provider: "zoom", want: "Online Meeting"},
		{name: "Online without provider", online: true, provider: "", want: "Online Meeting"},
		{name: "Offline with provider", online: false, provider: "teamsForBusiness", want: "none"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MeetingType(tc.online, tc.provider))
		})
	}
}

func TestNotificationEventID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		n    Notification
		want string
	}{
		{
			name: "Resource data wins",
			n:    Notification{Resource: "Users/x/Events/OTHER", ResourceData: ResourceData{ID: "E1"}},
			want: "E1",
		},
		{
			name: "Falls back to resource path",
			n:    Notification{Resource: "Users/abc/Events/AAMkAD="},
			want: "AAMkAD=",
		},
		{
			name: "Not an event resource",
			n:    Notification{Resource: "Users/abc/Messages/M1"},
			want: "",
		},
		{
			name: "Empty",
			n:    Notification{},
			want: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.n.EventID())
		})
	}
}

func TestDeriveAttendees(t *testing.T) {
	t.Parallel()

	ev := &graph.Event{
		ID:      "E1",
		Subject: "Review",
		Start:   graph.DateTimeTimeZone{DateTime: "2024-01-01T09:00:00"},
		End:     graph.DateTimeTimeZone{DateTime: "2024-01-01T10:00:00"},
		Organizer: &graph.Recipient{
			EmailAddress: graph.EmailAddress{Address: "PACIFIC@x.com"},
		},
		Attendees: []graph.Attendee{
			{Type: "required", EmailAddress: graph.EmailAddress{Address: "Pacific@X.com"}},
			{Type: "resource", EmailAddress: graph.EmailAddress{Address: "projector@x.com"}},
			{Type: "required", EmailAddress: graph.EmailAddress{Address: "a@b.com"}},
			{Type: "optional", EmailAddress: graph.EmailAddress{Address: "A@B.com"}},
			{Type: "optional", EmailAddress: graph.EmailAddress{Address: " "}},
			{Type: "optional", EmailAddress: graph.EmailAddress{Address: "c@d.com"}},
		},
	}

	d, err := derive(ev, "pacific@x.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"a@b.com", "c@d.com"}, d.attendees)
	// A room-organised event has no person to book for.
	assert.Nil(t, d.organizerEmail)
	assert.Equal(t, "none", d.meetingType)
}
