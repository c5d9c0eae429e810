package reconcile

import (
	"context"
	"strings"
	"sync"
	"time"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// memStore mirrors the postgres storage rules closely enough for the
// reconciler: half-open conflicts, the overlap exclusion and unique
// external event ids.
type memStore struct {
	mu sync.Mutex

	nextID    int64
	rooms     map[int64]models.Room
	subs      map[string]*models.Subscription
	bookings  map[int64]*models.Booking
	audits    []models.AuditEntry
	touched   map[int64]time.Time
	subErrors map[int64]string

	// beforeInsert runs inside CreateBooking before the uniqueness check.
	beforeInsert func(s *memStore)
}

func newMemStore() *memStore {
	return &memStore{
		nextID:    100,
		rooms:     map[int64]models.Room{},
		subs:      map[string]*models.Subscription{},
		bookings:  map[int64]*models.Booking{},
		touched:   map[int64]time.Time{},
		subErrors: map[int64]string{},
	}
}

func (s *memStore) addRoom(r models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

func (s *memStore) addSubscription(sub models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ExternalSubscriptionID] = &sub
}

func (s *memStore) addBooking(b models.Booking) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(b)
}

func (s *memStore) insertLocked(b models.Booking) int64 {
	s.nextID++
	b.ID = s.nextID
	if b.Status == "" {
		b.Status = models.BookingConfirmed
	}
	if b.Attendees == nil {
		b.Attendees = []string{}
	}
	s.bookings[b.ID] = &b
	return b.ID
}

func (s *memStore) booking(id int64) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.bookings[id]
}

func (s *memStore) allBookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	return out
}

func (s *memStore) auditLog() []models.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditEntry(nil), s.audits...)
}

func (s *memStore) FindSubscriptionByExternalID(_ context.Context, externalID string) (*models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[externalID]
	if !ok {
		return nil, storage.ErrSubscriptionNotFound
	}
	cp := *sub
	return &cp, nil
}

func (s *memStore) TouchSubscription(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[id] = at
	return nil
}

func (s *memStore) SetSubscriptionError(_ context.Context, id int64, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subErrors[id] = msg
	return nil
}

func (s *memStore) GetRoom(_ context.Context, id int64) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, storage.ErrRoomNotFound
	}
	return &r, nil
}

func (s *memStore) RoomByEmail(_ context.Context, email string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if strings.EqualFold(r.Mailbox(), email) {
			cp := r
			return &cp, nil
		}
	}
	return nil, storage.ErrRoomNotFound
}

func (s *memStore) findByExternalLocked(externalID string) *models.Booking {
	for _, b := range s.bookings {
		if b.ExternalEventID != nil && *b.ExternalEventID == externalID {
			return b
		}
	}
	return nil
}

func (s *memStore) FindBookingByExternalEventID(_ context.Context, externalID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findByExternalLocked(externalID)
	if b == nil {
		return nil, storage.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *memStore) CheckConflict(_ context.Context, roomID int64, start, end time.Time, excludeID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.RoomID != roomID || b.Status != models.BookingConfirmed || b.ID == excludeID {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateBooking(_ context.Context, nb models.NewBooking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.beforeInsert != nil {
		hook := s.beforeInsert
		s.beforeInsert = nil
		hook(s)
	}

	if nb.ExternalEventID != nil && s.findByExternalLocked(*nb.ExternalEventID) != nil {
		return nil, storage.ErrExternalEventExists
	}

	if nb.Status == "" || nb.Status == models.BookingConfirmed {
		candidate := models.Booking{RoomID: nb.RoomID, StartTime: nb.StartTime, EndTime: nb.EndTime}
		for _, b := range s.bookings {
			if b.RoomID == nb.RoomID && b.Status == models.BookingConfirmed && b.Overlaps(candidate) {
				return nil, storage.ErrBookingOverlap
			}
		}
	}

	id := s.insertLocked(models.Booking{
		RoomID:          nb.RoomID,
		UserID:          nb.UserID,
		Title:           nb.Title,
		Description:     nb.Description,
		StartTime:       nb.StartTime,
		EndTime:         nb.EndTime,
		Status:          nb.Status,
		MeetingType:     nb.MeetingType,
		Attendees:       nb.Attendees,
		ExternalEventID: nb.ExternalEventID,
		BookedForName:   nb.BookedForName,
		BookedForEmail:  nb.BookedForEmail,
	})

	cp := *s.bookings[id]
	return &cp, nil
}

func (s *memStore) CancelBooking(_ context.Context, id int64) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	b.Status = models.BookingCancelled
	cp := *b
	return &cp, nil
}

func (s *memStore) UpdateBookingFromExternal(_ context.Context, id int64, upd models.ExternalUpdate) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	if b.Status == models.BookingCancelled {
		return nil, storage.ErrBookingCancelled
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.StartTime != nil {
		b.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		b.EndTime = *upd.EndTime
	}
	if upd.MeetingType != nil {
		b.MeetingType = *upd.MeetingType
	}
	if len(upd.Attendees) > 0 {
		b.Attendees = upd.Attendees
	}
	if upd.BookedForName != nil {
		b.BookedForName = upd.BookedForName
	}
	if upd.BookedForEmail != nil {
		b.BookedForEmail = upd.BookedForEmail
	}

	cp := *b
	return &cp, nil
}

func (s *memStore) WriteAudit(_ context.Context, entry models.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits = append(s.audits, entry)
	return nil
}
