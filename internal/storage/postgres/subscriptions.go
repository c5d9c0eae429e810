package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

const subscriptionColumns = `id, room_id, room_email, external_subscription_id, expiration_date_time,
		client_state, status, last_notification_at, last_error, created_at`

func scanSubscription(row rowScanner) (*models.Subscription, error) {
	var (
		sub              models.Subscription
		status           string
		lastNotification sql.NullTime
		lastError        sql.NullString
	)

	err := row.Scan(
		&sub.ID,
		&sub.RoomID,
		&sub.RoomEmail,
		&sub.ExternalSubscriptionID,
		&sub.ExpirationDateTime,
		&sub.ClientState,
		&status,
		&lastNotification,
		&lastError,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Status = models.SubscriptionStatus(status)
	sub.ExpirationDateTime = sub.ExpirationDateTime.UTC()
	sub.LastNotificationAt = nullTime(lastNotification)
	sub.LastError = nullString(lastError)

	return &sub, nil
}

func (s *Storage) querySubscription(ctx context.Context, op, where string, args ...any) (*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM calendar_subscriptions WHERE ` + where

	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSubscriptionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

func (s *Storage) querySubscriptions(ctx context.Context, op, where string, args ...any) ([]models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM calendar_subscriptions`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY id ASC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	subs := []models.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan subscription: %w", op, err)
		}
		subs = append(subs, *sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating subscriptions: %w", op, err)
	}

	return subs, nil
}

func (s *Storage) GetSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	return s.querySubscription(ctx, "storage.postgres.GetSubscription", "id = $1", id)
}

func (s *Storage) FindSubscriptionByRoomEmail(ctx context.Context, roomEmail string) (*models.Subscription, error) {
	return s.querySubscription(ctx, "storage.postgres.FindSubscriptionByRoomEmail", "room_email = $1", roomEmail)
}

func (s *Storage) FindSubscriptionByExternalID(ctx context.Context, externalID string) (*models.Subscription, error) {
	return s.querySubscription(ctx, "storage.postgres.FindSubscriptionByExternalID",
		"external_subscription_id = $1", externalID)
}

func (s *Storage) FindSubscriptionsExpiringBefore(ctx context.Context, threshold time.Time) ([]models.Subscription, error) {
	return s.querySubscriptions(ctx, "storage.postgres.FindSubscriptionsExpiringBefore",
		"expiration_date_time < $1", threshold.UTC())
}

func (s *Storage) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return s.querySubscriptions(ctx, "storage.postgres.ListSubscriptions", "")
}

func (s *Storage) ListSubscriptionsByRoom(ctx context.Context, roomID int64) ([]models.Subscription, error) {
	return s.querySubscriptions(ctx, "storage.postgres.ListSubscriptionsByRoom", "room_id = $1", roomID)
}

// UpsertSubscription keeps exactly one row per room mailbox. The stored
// last_error is replaced with sub.LastError.
func (s *Storage) UpsertSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.postgres.UpsertSubscription"

	status := sub.Status
	if status == "" {
		status = models.SubscriptionActive
	}

	query := `
		INSERT INTO calendar_subscriptions (room_id, room_email, external_subscription_id,
			expiration_date_time, client_state, status, last_error)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (room_email) DO UPDATE SET
			room_id = EXCLUDED.room_id,
			external_subscription_id = EXCLUDED.external_subscription_id,
			expiration_date_time = EXCLUDED.expiration_date_time,
			client_state = EXCLUDED.client_state,
			status = EXCLUDED.status,
			last_error = EXCLUDED.last_error
		RETURNING ` + subscriptionColumns

	saved, err := scanSubscription(s.DB.QueryRowContext(ctx, query,
		sub.RoomID,
		sub.RoomEmail,
		sub.ExternalSubscriptionID,
		sub.ExpirationDateTime.UTC(),
		sub.ClientState,
		string(status),
		sub.LastError,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Storage) MarkSubscriptionRenewed(ctx context.Context, id int64, expiration time.Time) error {
	return s.execSubscription(ctx, "storage.postgres.MarkSubscriptionRenewed",
		`UPDATE calendar_subscriptions
		SET expiration_date_time = $2, status = 'active', last_error = NULL
		WHERE id = $1`, id, expiration.UTC())
}

func (s *Storage) TouchSubscription(ctx context.Context, id int64, at time.Time) error {
	return s.execSubscription(ctx, "storage.postgres.TouchSubscription",
		`UPDATE calendar_subscriptions SET last_notification_at = $2 WHERE id = $1`, id, at.UTC())
}

func (s *Storage) SetSubscriptionError(ctx context.Context, id int64, msg string) error {
	return s.execSubscription(ctx, "storage.postgres.SetSubscriptionError",
		`UPDATE calendar_subscriptions SET last_error = $2 WHERE id = $1`, id, msg)
}

func (s *Storage) DeleteSubscription(ctx context.Context, id int64) error {
	return s.execSubscription(ctx, "storage.postgres.DeleteSubscription",
		`DELETE FROM calendar_subscriptions WHERE id = $1`, id)
}

func (s *Storage) execSubscription(ctx context.Context, op, query string, args ...any) error {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSubscriptionNotFound)
	}

	return nil
}
