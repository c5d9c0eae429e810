package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

const bookingColumns = `id, room_id, user_id, title, description, start_time, end_time, status,
		meeting_type, attendees, external_event_id, booked_for_name, booked_for_email,
		created_at, updated_at`

const (
	externalEventConstraint = "bookings_external_event_id_key"
	overlapConstraint       = "bookings_no_overlap"
)

func scanBooking(row rowScanner) (*models.Booking, error) {
	var (
		b              models.Booking
		userID         sql.NullInt64
		status         string
		attendees      pq.StringArray
		externalID     sql.NullString
		bookedForName  sql.NullString
		bookedForEmail sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&userID,
		&b.Title,
		&b.Description,
		&b.StartTime,
		&b.EndTime,
		&status,
		&b.MeetingType,
		&attendees,
		&externalID,
		&bookedForName,
		&bookedForEmail,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.UserID = nullInt64(userID)
	b.Status = models.BookingStatus(status)
	b.Attendees = []string(attendees)
	if b.Attendees == nil {
		b.Attendees = []string{}
	}
	b.ExternalEventID = nullString(externalID)
	b.BookedForName = nullString(bookedForName)
	b.BookedForEmail = nullString(bookedForEmail)
	b.StartTime = b.StartTime.UTC()
	b.EndTime = b.EndTime.UTC()

	return &b, nil
}

// CheckConflict reports whether a confirmed booking in the room intersects
// [start, end). Touching endpoints do not conflict. excludeID of 0 excludes nothing.
func (s *Storage) CheckConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (bool, error) {
	const op = "storage.postgres.CheckConflict"

	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE room_id = $1
			AND status = 'confirmed'
			AND start_time < $3
			AND end_time > $2
			AND ($4::bigint = 0 OR id <> $4::bigint)
		)`

	var exists bool
	err := s.DB.QueryRowContext(ctx, query, roomID, start.UTC(), end.UTC(), excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// CreateBooking inserts a booking as given. Overlap with a confirmed booking in
// the same room is rejected by the database with ErrBookingOverlap.
func (s *Storage) CreateBooking(ctx context.Context, nb models.NewBooking) (*models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	status := nb.Status
	if status == "" {
		status = models.BookingConfirmed
	}
	meetingType := nb.MeetingType
	if meetingType == "" {
		meetingType = models.MeetingTypeNone
	}
	attendees := nb.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	query := `
		INSERT INTO bookings (room_id, user_id, title, description, start_time, end_time, status,
			meeting_type, attendees, external_event_id, booked_for_name, booked_for_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + bookingColumns

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query,
		nb.RoomID,
		nb.UserID,
		nb.Title,
		nb.Description,
		nb.StartTime.UTC(),
		nb.EndTime.UTC(),
		string(status),
		meetingType,
		pq.StringArray(attendees),
		nb.ExternalEventID,
		nb.BookedForName,
		nb.BookedForEmail,
	))
	if err != nil {
		if isUniqueViolation(err, externalEventConstraint) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrExternalEventExists)
		}
		if isExclusionViolation(err, overlapConstraint) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingOverlap)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) FindBookingByExternalEventID(ctx context.Context, externalID string) (*models.Booking, error) {
	const op = "storage.postgres.FindBookingByExternalEventID"

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE external_event_id = $1`

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// CancelBooking flips the booking to cancelled. Cancelling twice is not an error.
func (s *Storage) CancelBooking(ctx context.Context, id int64) (*models.Booking, error) {
	const op = "storage.postgres.CancelBooking"

	query := `
		UPDATE bookings
		SET status = 'cancelled',
			updated_at = CASE WHEN status = 'cancelled' THEN updated_at ELSE NOW() END
		WHERE id = $1
		RETURNING ` + bookingColumns

	b, err := scanBooking(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

// UpdateBookingFromExternal applies a partial update coming from the calendar
// provider. Cancelled bookings are never touched: ErrBookingCancelled is returned.
func (s *Storage) UpdateBookingFromExternal(ctx context.Context, id int64, upd models.ExternalUpdate) (*models.Booking, error) {
	const op = "storage.postgres.UpdateBookingFromExternal"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if models.BookingStatus(status) == models.BookingCancelled {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingCancelled)
	}

	var attendees any
	if len(upd.Attendees) > 0 {
		attendees = pq.StringArray(upd.Attendees)
	}

	query := `
		UPDATE bookings
		SET title = COALESCE($2, title),
			start_time = COALESCE($3, start_time),
			end_time = COALESCE($4, end_time),
			meeting_type = COALESCE($5, meeting_type),
			attendees = COALESCE($6, attendees),
			booked_for_name = COALESCE($7, booked_for_name),
			booked_for_email = COALESCE($8, booked_for_email),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	b, err := scanBooking(tx.QueryRowContext(ctx, query,
		id,
		upd.Title,
		utcPtr(upd.StartTime),
		utcPtr(upd.EndTime),
		upd.MeetingType,
		attendees,
		upd.BookedForName,
		upd.BookedForEmail,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return b, nil
}

// SetBookingExternalEventID links a booking to the provider event created for it.
func (s *Storage) SetBookingExternalEventID(ctx context.Context, id int64, externalID string) error {
	const op = "storage.postgres.SetBookingExternalEventID"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE bookings SET external_event_id = $2, updated_at = NOW() WHERE id = $1`, id, externalID)
	if err != nil {
		if isUniqueViolation(err, externalEventConstraint) {
			return fmt.Errorf("%s: %w", op, storage.ErrExternalEventExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return nil
}

// ListRoomBookings returns every booking of the room that intersects [from, to).
func (s *Storage) ListRoomBookings(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error) {
	const op = "storage.postgres.ListRoomBookings"

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, roomID, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
