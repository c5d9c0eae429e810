package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive SubscriptionStatus = "active"
	SubscriptionFailed SubscriptionStatus = "failed"
)

type Subscription struct {
	ID                     int64              `json:"id"`
	RoomID                 int64              `json:"room_id"`
	RoomEmail              string             `json:"room_email"`
	ExternalSubscriptionID string             `json:"external_subscription_id"`
	ExpirationDateTime     time.Time          `json:"expiration_date_time"`
	ClientState            string             `json:"-"`
	Status                 SubscriptionStatus `json:"status"`
	LastNotificationAt     *time.Time         `json:"last_notification_at"`
	LastError              *string            `json:"last_error"`
	CreatedAt              time.Time          `json:"created_at"`
}

func (s Subscription) IsExpired(now time.Time) bool {
	return s.ExpirationDateTime.Before(now)
}
