package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roomBooker/internal/graph"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/notify"
	"roomBooker/internal/storage"
)

var ErrConflict = errors.New("room is already booked for this time")

// ValidationError is malformed input to the ledger.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Message)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	CheckConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (bool, error)
	CreateBooking(ctx context.Context, nb models.NewBooking) (*models.Booking, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*models.Booking, error)
	SetBookingExternalEventID(ctx context.Context, id int64, externalID string) error
	ListRoomBookings(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error)
	WriteAudit(ctx context.Context, entry models.AuditEntry) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Calendar
type Calendar interface {
	CreateEvent(ctx context.Context, ne graph.NewEvent) (*graph.CreatedEvent, error)
	CancelEvent(ctx context.Context, mailbox, eventID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, topic string, change notify.Change) error
}

// Request is a booking made directly by a user.
type Request struct {
	RoomID        int64
	UserID        *int64
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	OnlineMeeting bool
	Attendees     []string
}

// Service is the direct booking path. It shares CheckConflict with the
// calendar reconciler so both paths enforce the same no-overlap rule.
// Calendar may be nil when sync is not configured.
type Service struct {
	log      *slog.Logger
	storage  Storage
	calendar Calendar
	pub      Publisher

	now func() time.Time
}

func New(log *slog.Logger, storage Storage, calendar Calendar, pub Publisher) *Service {
	return &Service{
		log:      log,
		storage:  storage,
		calendar: calendar,
		pub:      pub,
		now:      time.Now,
	}
}

func (s *Service) Book(ctx context.Context, req Request) (*models.Booking, error) {
	const op = "booking.Book"

	log := s.log.With(slog.String("op", op), slog.Int64("room_id", req.RoomID))

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "is required"}
	}
	start, end := req.StartTime.UTC(), req.EndTime.UTC()
	if !end.After(start) {
		return nil, &ValidationError{Field: "end_time", Message: "must be after start_time"}
	}

	room, err := s.storage.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return nil, &ValidationError{Field: "room_id", Message: "does not exist"}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conflict, err := s.storage.CheckConflict(ctx, room.ID, start, end, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if conflict {
		return nil, fmt.Errorf("%s: %w", op, ErrConflict)
	}

	meetingType := models.MeetingTypeNone
	if req.OnlineMeeting {
		meetingType = models.MeetingTypeTeams
	}

	b, err := s.storage.CreateBooking(ctx, models.NewBooking{
		RoomID:      room.ID,
		UserID:      req.UserID,
		Title:       title,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Status:      models.BookingConfirmed,
		MeetingType: meetingType,
		Attendees:   req.Attendees,
	})
	if errors.Is(err, storage.ErrBookingOverlap) {
		log.Info("booking lost the race for the slot")
		return nil, fmt.Errorf("%s: %w", op, ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(slog.Int64("booking_id", b.ID))
	log.Info("booking created")

	s.audit(ctx, b.ID, models.AuditBookingCreated, req.UserID)

	if s.syncsTo(room) {
		s.pushEvent(ctx, log, room, b, req)
	}

	s.publish(ctx, "booking.created", b)

	return b, nil
}

// pushEvent mirrors the booking into the room calendar. A provider failure
// leaves the booking in place unlinked.
func (s *Service) pushEvent(ctx context.Context, log *slog.Logger, room *models.Room, b *models.Booking, req Request) {
	created, err := s.calendar.CreateEvent(ctx, graph.NewEvent{
		Mailbox:       room.Mailbox(),
		Subject:       b.Title,
		Start:         b.StartTime,
		End:           b.EndTime,
		Body:          b.Description,
		OnlineMeeting: req.OnlineMeeting,
		Attendees:     req.Attendees,
	})
	if err != nil {
		log.Warn("failed to create calendar event", sl.Err(err))
		return
	}

	if err = s.storage.SetBookingExternalEventID(ctx, b.ID, created.ID); err != nil {
		log.Warn("failed to link calendar event", slog.String("event_id", created.ID), sl.Err(err))
		return
	}

	b.ExternalEventID = &created.ID
	log.Info("calendar event created", slog.String("event_id", created.ID))
}

func (s *Service) syncsTo(room *models.Room) bool {
	return s.calendar != nil && room.CalendarSyncEnabled && room.Mailbox() != ""
}

// Cancel cancels a booking. Cancelling an already cancelled booking returns it unchanged.
func (s *Service) Cancel(ctx context.Context, id int64, actorID *int64) (*models.Booking, error) {
	const op = "booking.Cancel"

	log := s.log.With(slog.String("op", op), slog.Int64("booking_id", id))

	existing, err := s.storage.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing.Status == models.BookingCancelled {
		return existing, nil
	}

	b, err := s.storage.CancelBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking cancelled")

	s.audit(ctx, b.ID, models.AuditBookingCancelled, actorID)

	if b.ExternalEventID != nil && s.calendar != nil {
		s.cancelEvent(ctx, log, b)
	}

	s.publish(ctx, "booking.cancelled", b)

	return b, nil
}

func (s *Service) cancelEvent(ctx context.Context, log *slog.Logger, b *models.Booking) {
	room, err := s.storage.GetRoom(ctx, b.RoomID)
	if err != nil {
		log.Warn("failed to load room for calendar cancel", sl.Err(err))
		return
	}
	if room.Mailbox() == "" {
		return
	}

	err = s.calendar.CancelEvent(ctx, room.Mailbox(), *b.ExternalEventID)
	if err != nil && !graph.IsNotFound(err) {
		log.Warn("failed to cancel calendar event", slog.String("event_id", *b.ExternalEventID), sl.Err(err))
	}
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Booking, error) {
	const op = "booking.Get"

	b, err := s.storage.GetBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// ListForRoom returns the room's bookings intersecting [from, to).
func (s *Service) ListForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error) {
	const op = "booking.ListForRoom"

	if !to.After(from) {
		return nil, &ValidationError{Field: "to", Message: "must be after from"}
	}

	if _, err := s.storage.GetRoom(ctx, roomID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.storage.ListRoomBookings(ctx, roomID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *Service) audit(ctx context.Context, bookingID int64, action string, actorID *int64) {
	err := s.storage.WriteAudit(ctx, models.AuditEntry{
		BookingID:   bookingID,
		Action:      action,
		ActorUserID: actorID,
		Source:      models.AuditSourceUser,
	})
	if err != nil {
		s.log.Warn("failed to write audit entry",
			slog.Int64("booking_id", bookingID),
			slog.String("action", action),
			sl.Err(err),
		)
	}
}

func (s *Service) publish(ctx context.Context, action string, b *models.Booking) {
	if s.pub == nil {
		return
	}

	err := s.pub.Publish(ctx, notify.TopicBookings, notify.Change{
		Action:     action,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		Source:     models.AuditSourceUser,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Warn("failed to publish booking change", slog.String("action", action), sl.Err(err))
	}
}
