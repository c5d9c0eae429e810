package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

const roomColumns = `id, facility_id, name, email, calendar_sync_enabled`

func scanRoom(row rowScanner) (*models.Room, error) {
	var (
		r     models.Room
		email sql.NullString
	)

	if err := row.Scan(&r.ID, &r.FacilityID, &r.Name, &email, &r.CalendarSyncEnabled); err != nil {
		return nil, err
	}
	r.Email = nullString(email)

	return &r, nil
}

func (s *Storage) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	const op = "storage.postgres.GetRoom"

	r, err := scanRoom(s.DB.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRoomNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// RoomByEmail resolves the room owning a calendar mailbox. Addresses compare case-insensitively.
func (s *Storage) RoomByEmail(ctx context.Context, email string) (*models.Room, error) {
	const op = "storage.postgres.RoomByEmail"

	query := `SELECT ` + roomColumns + ` FROM rooms WHERE lower(email) = lower($1)`

	r, err := scanRoom(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrRoomNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// ListSyncRooms returns rooms flagged for calendar sync, with or without a mailbox.
func (s *Storage) ListSyncRooms(ctx context.Context) ([]models.Room, error) {
	const op = "storage.postgres.ListSyncRooms"

	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE calendar_sync_enabled = true ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan room: %w", op, err)
		}
		rooms = append(rooms, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating rooms: %w", op, err)
	}

	return rooms, nil
}

// SetRoomSyncEnabled flips the room's calendar sync flag.
func (s *Storage) SetRoomSyncEnabled(ctx context.Context, roomID int64, enabled bool) error {
	const op = "storage.postgres.SetRoomSyncEnabled"

	res, err := s.DB.ExecContext(ctx, `UPDATE rooms SET calendar_sync_enabled = $2 WHERE id = $1`, roomID, enabled)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrRoomNotFound)
	}

	return nil
}
