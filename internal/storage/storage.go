package storage

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingCancelled     = errors.New("booking is cancelled")
	ErrExternalEventExists  = errors.New("booking for external event already exists")
	ErrBookingOverlap       = errors.New("booking overlaps a confirmed booking")
	ErrRoomNotFound         = errors.New("room not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
