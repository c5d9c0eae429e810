package models

type Room struct {
	ID                  int64   `json:"id"`
	FacilityID          int64   `json:"facility_id"`
	Name                string  `json:"name"`
	Email               *string `json:"email"`
	CalendarSyncEnabled bool    `json:"calendar_sync_enabled"`
}

// Mailbox returns the room's calendar mailbox address, or "" when it has none.
func (r Room) Mailbox() string {
	if r.Email == nil {
		return ""
	}
	return *r.Email
}
