package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomBooker/internal/graph"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/notify"
	"roomBooker/internal/storage"
)

// DefaultLookahead is how far ahead of expiry a subscription gets renewed.
const DefaultLookahead = 12 * time.Hour

var ErrNoMailbox = errors.New("room has no mailbox address")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	ListSyncRooms(ctx context.Context) ([]models.Room, error)
	GetSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	FindSubscriptionByRoomEmail(ctx context.Context, roomEmail string) (*models.Subscription, error)
	FindSubscriptionsExpiringBefore(ctx context.Context, threshold time.Time) ([]models.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	ListSubscriptionsByRoom(ctx context.Context, roomID int64) ([]models.Subscription, error)
	UpsertSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	MarkSubscriptionRenewed(ctx context.Context, id int64, expiration time.Time) error
	DeleteSubscription(ctx context.Context, id int64) error
	SetRoomSyncEnabled(ctx context.Context, roomID int64, enabled bool) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Calendar
type Calendar interface {
	CreateSubscription(ctx context.Context, ns graph.NewSubscription) (*graph.Subscription, error)
	RenewSubscription(ctx context.Context, subscriptionID string) (*graph.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, topic string, change notify.Change) error
}

// Manager keeps one live provider subscription per sync-enabled room mailbox.
// A nil Calendar or an empty notification URL means sync is not configured:
// enabling reports graph.ErrNotConfigured, removals still clean up locally.
type Manager struct {
	log             *slog.Logger
	storage         Storage
	calendar        Calendar
	pub             Publisher
	notificationURL string
	lookahead       time.Duration

	now       func() time.Time
	newSecret func() string
}

func New(log *slog.Logger, storage Storage, calendar Calendar, pub Publisher, notificationURL string, lookahead time.Duration) *Manager {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	return &Manager{
		log:             log,
		storage:         storage,
		calendar:        calendar,
		pub:             pub,
		notificationURL: notificationURL,
		lookahead:       lookahead,
		now:             time.Now,
		newSecret:       uuid.NewString,
	}
}

func (m *Manager) Configured() bool {
	return m.calendar != nil && m.notificationURL != ""
}

// EnableForRoom flags the room for sync and renews its subscription or
// replaces it with a fresh one. Failures are reported in the Result, never returned.
func (m *Manager) EnableForRoom(ctx context.Context, roomID int64, roomEmail string) Result {
	const op = "calsync.lifecycle.EnableForRoom"

	res := m.ensure(ctx, roomID, roomEmail)
	if !res.Success {
		return res
	}

	if err := m.storage.SetRoomSyncEnabled(ctx, roomID, true); err != nil {
		m.log.Error("failed to flag room for sync",
			slog.String("op", op),
			slog.Int64("room_id", roomID),
			sl.Err(err),
		)
		return res.fail(fmt.Errorf("%s: %w", op, err))
	}

	return res
}

// ensure makes sure the mailbox has a live subscription. A failed creation
// leaves a failed row behind so the next renewal pass retries the room.
func (m *Manager) ensure(ctx context.Context, roomID int64, roomEmail string) Result {
	const op = "calsync.lifecycle.ensure"

	mailbox := strings.TrimSpace(roomEmail)

	log := m.log.With(
		slog.String("op", op),
		slog.Int64("room_id", roomID),
		slog.String("room_email", mailbox),
	)

	res := Result{RoomID: roomID, RoomEmail: mailbox}

	if !m.Configured() {
		return res.fail(graph.ErrNotConfigured)
	}
	if mailbox == "" {
		return res.fail(ErrNoMailbox)
	}

	existing, err := m.storage.FindSubscriptionByRoomEmail(ctx, mailbox)
	switch {
	case err == nil && existing.ExternalSubscriptionID == "":
		log.Debug("retrying failed subscription")
	case err == nil:
		renewed, err := m.calendar.RenewSubscription(ctx, existing.ExternalSubscriptionID)
		if err == nil {
			if err = m.storage.MarkSubscriptionRenewed(ctx, existing.ID, renewed.ExpirationDateTime); err != nil {
				log.Error("failed to store renewed expiration", sl.Err(err))
				return res.fail(fmt.Errorf("%s: %w", op, err))
			}

			log.Info("subscription renewed", slog.Time("expires_at", renewed.ExpirationDateTime))
			m.publish(ctx, "subscription.renewed", roomID)

			res.Success = true
			res.Renewed = true
			res.SubscriptionID = existing.ExternalSubscriptionID
			res.ExpiresAt = renewed.ExpirationDateTime
			return res
		}

		log.Warn("renewal failed, recreating subscription", sl.Err(err))
		m.dropStale(ctx, *existing)
	case !errors.Is(err, storage.ErrSubscriptionNotFound):
		log.Error("failed to look up subscription", sl.Err(err))
		return res.fail(fmt.Errorf("%s: %w", op, err))
	}

	return m.create(ctx, log, res)
}

// recreate replaces a subscription whose renewal failed without looking it up again.
func (m *Manager) recreate(ctx context.Context, sub models.Subscription) Result {
	log := m.log.With(
		slog.String("op", "calsync.lifecycle.recreate"),
		slog.Int64("room_id", sub.RoomID),
		slog.String("room_email", sub.RoomEmail),
	)

	return m.create(ctx, log, Result{RoomID: sub.RoomID, RoomEmail: sub.RoomEmail})
}

func (m *Manager) create(ctx context.Context, log *slog.Logger, res Result) Result {
	const op = "calsync.lifecycle.create"

	roomID, mailbox := res.RoomID, res.RoomEmail
	secret := m.newSecret()

	created, err := m.calendar.CreateSubscription(ctx, graph.NewSubscription{
		Mailbox:         mailbox,
		NotificationURL: m.notificationURL,
		ClientState:     secret,
	})
	if err != nil {
		log.Error("failed to create provider subscription", sl.Err(err))
		m.recordFailure(ctx, roomID, mailbox, err)
		return res.fail(fmt.Errorf("%s: %w", op, err))
	}

	_, err = m.storage.UpsertSubscription(ctx, models.Subscription{
		RoomID:                 roomID,
		RoomEmail:              mailbox,
		ExternalSubscriptionID: created.ID,
		ExpirationDateTime:     created.ExpirationDateTime,
		ClientState:            secret,
		Status:                 models.SubscriptionActive,
	})
	if err != nil {
		log.Error("failed to save subscription", sl.Err(err))
		// Nothing points at the provider subscription any more.
		if be := m.deleteRemote(ctx, created.ID); be.Err != nil {
			log.Warn("failed to delete orphaned provider subscription", sl.Err(be.Err))
		}
		return res.fail(fmt.Errorf("%s: %w", op, err))
	}

	log.Info("subscription created",
		slog.String("subscription_id", created.ID),
		slog.Time("expires_at", created.ExpirationDateTime),
	)
	m.publish(ctx, "subscription.created", roomID)

	res.Success = true
	res.SubscriptionID = created.ID
	res.ExpiresAt = created.ExpirationDateTime
	return res
}

// SubscribeAll enables every sync-enabled room in turn. Rooms without a
// mailbox are skipped; one room failing never stops the others.
func (m *Manager) SubscribeAll(ctx context.Context) (Summary, error) {
	const op = "calsync.lifecycle.SubscribeAll"

	log := m.log.With(slog.String("op", op))

	rooms, err := m.storage.ListSyncRooms(ctx)
	if err != nil {
		log.Error("failed to list rooms", sl.Err(err))
		return Summary{}, fmt.Errorf("%s: %w", op, err)
	}

	summary := Summary{Total: len(rooms), Errors: []RoomError{}}

	for _, room := range rooms {
		if ctx.Err() != nil {
			return summary, fmt.Errorf("%s: %w", op, ctx.Err())
		}

		if room.Mailbox() == "" {
			summary.Skipped++
			continue
		}

		res := m.ensure(ctx, room.ID, room.Mailbox())
		if res.Success {
			summary.Success++
			continue
		}

		summary.Failed++
		summary.Errors = append(summary.Errors, RoomError{
			RoomID:    room.ID,
			RoomName:  room.Name,
			RoomEmail: room.Mailbox(),
			Error:     res.Error,
		})
	}

	log.Info("subscribe all finished",
		slog.Int("total", summary.Total),
		slog.Int("success", summary.Success),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}

// DisableForRoom clears the room's sync flag and removes every subscription
// registered for it.
func (m *Manager) DisableForRoom(ctx context.Context, roomID int64) ([]Removal, error) {
	const op = "calsync.lifecycle.DisableForRoom"

	if err := m.storage.SetRoomSyncEnabled(ctx, roomID, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subs, err := m.storage.ListSubscriptionsByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.removeAll(ctx, op, subs)
}

// Remove deletes one subscription by its local id.
func (m *Manager) Remove(ctx context.Context, id int64) (Removal, error) {
	const op = "calsync.lifecycle.Remove"

	sub, err := m.storage.GetSubscription(ctx, id)
	if err != nil {
		return Removal{}, fmt.Errorf("%s: %w", op, err)
	}

	r, err := m.remove(ctx, *sub)
	if err != nil {
		return r, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (m *Manager) DisableAll(ctx context.Context) ([]Removal, error) {
	const op = "calsync.lifecycle.DisableAll"

	subs, err := m.storage.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m.removeAll(ctx, op, subs)
}

func (m *Manager) removeAll(ctx context.Context, op string, subs []models.Subscription) ([]Removal, error) {
	removals := make([]Removal, 0, len(subs))

	for _, sub := range subs {
		r, err := m.remove(ctx, sub)
		if err != nil {
			return removals, fmt.Errorf("%s: %w", op, err)
		}
		removals = append(removals, r)
	}

	return removals, nil
}

// remove deletes the provider subscription best-effort, then the local row
// unconditionally.
func (m *Manager) remove(ctx context.Context, sub models.Subscription) (Removal, error) {
	log := m.log.With(
		slog.String("op", "calsync.lifecycle.remove"),
		slog.Int64("subscription_id", sub.ID),
		slog.String("room_email", sub.RoomEmail),
	)

	r := Removal{
		SubscriptionID: sub.ID,
		RoomID:         sub.RoomID,
		RoomEmail:      sub.RoomEmail,
		Remote:         m.deleteRemote(ctx, sub.ExternalSubscriptionID),
	}
	if r.Remote.Err != nil {
		log.Warn("provider subscription delete failed", sl.Err(r.Remote.Err))
	}

	if err := m.storage.DeleteSubscription(ctx, sub.ID); err != nil && !errors.Is(err, storage.ErrSubscriptionNotFound) {
		log.Error("failed to delete subscription", sl.Err(err))
		return r, err
	}

	log.Info("subscription removed")
	m.publish(ctx, "subscription.removed", sub.RoomID)

	return r, nil
}

// dropStale deletes the provider side of a subscription that could not be
// renewed. The local row stays until the recreate overwrites it.
func (m *Manager) dropStale(ctx context.Context, sub models.Subscription) {
	if be := m.deleteRemote(ctx, sub.ExternalSubscriptionID); be.Err != nil {
		m.log.Debug("stale provider subscription not deleted",
			slog.String("subscription_id", sub.ExternalSubscriptionID), sl.Err(be.Err))
	}
}

// recordFailure replaces the mailbox row with a failed one that is already
// expired, which keeps the room visible in List and due for renewal.
func (m *Manager) recordFailure(ctx context.Context, roomID int64, mailbox string, cause error) {
	msg := cause.Error()

	_, err := m.storage.UpsertSubscription(ctx, models.Subscription{
		RoomID:             roomID,
		RoomEmail:          mailbox,
		ExpirationDateTime: m.now().UTC(),
		Status:             models.SubscriptionFailed,
		LastError:          &msg,
	})
	if err != nil {
		m.log.Warn("failed to record subscription failure",
			slog.Int64("room_id", roomID), slog.String("room_email", mailbox), sl.Err(err))
	}
}

func (m *Manager) deleteRemote(ctx context.Context, externalID string) BestEffort {
	if m.calendar == nil || externalID == "" {
		return BestEffort{}
	}

	return BestEffort{
		Attempted: true,
		Err:       m.calendar.DeleteSubscription(ctx, externalID),
	}
}

// List returns every registered subscription with its expiry computed against now.
func (m *Manager) List(ctx context.Context) ([]View, error) {
	const op = "calsync.lifecycle.List"

	subs, err := m.storage.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := m.now()
	views := make([]View, 0, len(subs))
	for _, sub := range subs {
		views = append(views, View{Subscription: sub, IsExpired: sub.IsExpired(now)})
	}

	return views, nil
}

// RenewExpiring is one renewal pass: every subscription expiring within the
// lookahead is renewed, or dropped and recreated when renewal fails. Failed
// rows are always due and go straight to recreation.
func (m *Manager) RenewExpiring(ctx context.Context) RenewalReport {
	const op = "calsync.lifecycle.RenewExpiring"

	log := m.log.With(slog.String("op", op))

	report := RenewalReport{Errors: []RoomError{}}

	if !m.Configured() {
		log.Warn("renewal skipped", sl.Err(graph.ErrNotConfigured))
		return report
	}

	threshold := m.now().Add(m.lookahead)

	subs, err := m.storage.FindSubscriptionsExpiringBefore(ctx, threshold)
	if err != nil {
		log.Error("failed to load expiring subscriptions", sl.Err(err))
		report.Errors = append(report.Errors, RoomError{Error: err.Error()})
		return report
	}

	for _, sub := range subs {
		if ctx.Err() != nil {
			break
		}
		report.Checked++

		if sub.ExternalSubscriptionID != "" {
			renewed, err := m.calendar.RenewSubscription(ctx, sub.ExternalSubscriptionID)
			if err == nil {
				err = m.storage.MarkSubscriptionRenewed(ctx, sub.ID, renewed.ExpirationDateTime)
			}
			if err == nil {
				report.Renewed++
				continue
			}

			log.Warn("renewal failed, recreating subscription",
				slog.String("room_email", sub.RoomEmail), sl.Err(err))

			m.dropStale(ctx, sub)
		}

		res := m.recreate(ctx, sub)
		if res.Success {
			report.Recreated++
			continue
		}

		report.Failed++
		report.Errors = append(report.Errors, RoomError{
			RoomID:    sub.RoomID,
			RoomEmail: sub.RoomEmail,
			Error:     res.Error,
		})
	}

	log.Info("renewal pass finished",
		slog.Int("checked", report.Checked),
		slog.Int("renewed", report.Renewed),
		slog.Int("recreated", report.Recreated),
		slog.Int("failed", report.Failed),
	)

	return report
}

func (m *Manager) publish(ctx context.Context, action string, roomID int64) {
	if m.pub == nil {
		return
	}

	err := m.pub.Publish(ctx, notify.TopicSubscriptions, notify.Change{
		Action:     action,
		RoomID:     roomID,
		Source:     models.AuditSourceCalendarSync,
		OccurredAt: m.now().UTC(),
	})
	if err != nil {
		m.log.Warn("failed to publish subscription change", slog.String("action", action), sl.Err(err))
	}
}
