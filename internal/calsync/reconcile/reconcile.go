package reconcile

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"roomBooker/internal/graph"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/notify"
	"roomBooker/internal/storage"
)

// DefaultResyncWindow bounds how far ahead ResyncRoom reads the room calendar.
const DefaultResyncWindow = 30 * 24 * time.Hour

var ErrNoMailbox = errors.New("room has no mailbox address")

// Outcome says what a notification did to the ledger.
type Outcome string

const (
	OutcomeUnknownSubscription Outcome = "unknown_subscription"
	OutcomeRejected            Outcome = "rejected"
	OutcomeRoomMissing         Outcome = "room_missing"
	OutcomeIgnored             Outcome = "ignored"
	OutcomeCreated             Outcome = "created"
	OutcomeUpdated             Outcome = "updated"
	OutcomeUnchanged           Outcome = "unchanged"
	OutcomeCancelled           Outcome = "cancelled"
	OutcomeConflict            Outcome = "dropped_conflict"
	OutcomeCancelledKept       Outcome = "cancelled_kept"
	OutcomeFailed              Outcome = "failed"
)

// Storage is the part of the ledger and subscription registry the reconciler needs.
type Storage interface {
	FindSubscriptionByExternalID(ctx context.Context, externalID string) (*models.Subscription, error)
	TouchSubscription(ctx context.Context, id int64, at time.Time) error
	SetSubscriptionError(ctx context.Context, id int64, msg string) error
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	RoomByEmail(ctx context.Context, email string) (*models.Room, error)
	FindBookingByExternalEventID(ctx context.Context, externalID string) (*models.Booking, error)
	CheckConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (bool, error)
	CreateBooking(ctx context.Context, nb models.NewBooking) (*models.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBookingFromExternal(ctx context.Context, id int64, upd models.ExternalUpdate) (*models.Booking, error)
	WriteAudit(ctx context.Context, entry models.AuditEntry) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Calendar
type Calendar interface {
	GetEvent(ctx context.Context, mailbox, eventID string) (*graph.Event, error)
	ListEvents(ctx context.Context, mailbox string, start, end time.Time) ([]graph.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Publisher
type Publisher interface {
	Publish(ctx context.Context, topic string, change notify.Change) error
}

// Reconciler turns provider change notifications into ledger mutations.
// Processing is idempotent: the provider may redeliver or reorder freely.
type Reconciler struct {
	log          *slog.Logger
	storage      Storage
	calendar     Calendar
	pub          Publisher
	resyncWindow time.Duration

	now func() time.Time
}

func New(log *slog.Logger, storage Storage, calendar Calendar, pub Publisher, resyncWindow time.Duration) *Reconciler {
	if resyncWindow <= 0 {
		resyncWindow = DefaultResyncWindow
	}

	return &Reconciler{
		log:          log,
		storage:      storage,
		calendar:     calendar,
		pub:          pub,
		resyncWindow: resyncWindow,
		now:          time.Now,
	}
}

// ProcessBatch handles every notification independently.
func (r *Reconciler) ProcessBatch(ctx context.Context, batch []Notification) []Outcome {
	outcomes := make([]Outcome, 0, len(batch))
	for _, n := range batch {
		outcomes = append(outcomes, r.Process(ctx, n))
	}
	return outcomes
}

// Process never fails: errors after authentication are stored on the
// subscription's last error and reported as OutcomeFailed.
func (r *Reconciler) Process(ctx context.Context, n Notification) Outcome {
	const op = "calsync.reconcile.Process"

	log := r.log.With(
		slog.String("op", op),
		slog.String("subscription_id", n.SubscriptionID),
		slog.String("change_type", n.ChangeType),
		slog.String("event_id", n.EventID()),
	)

	// Failed subscription rows carry no provider id and no secret.
	if n.SubscriptionID == "" {
		log.Warn("notification without subscription id discarded")
		return OutcomeUnknownSubscription
	}

	sub, err := r.storage.FindSubscriptionByExternalID(ctx, n.SubscriptionID)
	if err != nil {
		if errors.Is(err, storage.ErrSubscriptionNotFound) {
			log.Warn("notification for unknown subscription discarded")
			return OutcomeUnknownSubscription
		}
		log.Error("failed to look up subscription", sl.Err(err))
		return OutcomeFailed
	}

	if sub.ClientState == "" || subtle.ConstantTimeCompare([]byte(n.ClientState), []byte(sub.ClientState)) != 1 {
		log.Warn("client state mismatch, notification discarded")
		return OutcomeRejected
	}

	if err = r.storage.TouchSubscription(ctx, sub.ID, r.now()); err != nil {
		log.Warn("failed to record notification time", sl.Err(err))
	}

	outcome, err := r.dispatch(ctx, sub, n)
	if err != nil {
		log.Error("failed to process notification", sl.Err(err))
		if serr := r.storage.SetSubscriptionError(ctx, sub.ID, err.Error()); serr != nil {
			log.Warn("failed to record subscription error", sl.Err(serr))
		}
		return OutcomeFailed
	}

	log.Info("notification processed", slog.String("outcome", string(outcome)))

	return outcome
}

func (r *Reconciler) dispatch(ctx context.Context, sub *models.Subscription, n Notification) (Outcome, error) {
	room, err := r.storage.RoomByEmail(ctx, sub.RoomEmail)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return OutcomeRoomMissing, nil
		}
		return "", err
	}

	eventID := n.EventID()
	if eventID == "" {
		return "", errors.New("notification carries no event id")
	}

	switch n.ChangeType {
	case ChangeDeleted:
		return r.cancelLinked(ctx, eventID, "deleted")
	case ChangeCreated, ChangeUpdated:
		return r.refresh(ctx, room, sub.RoomEmail, eventID)
	default:
		return OutcomeIgnored, nil
	}
}

// refresh re-reads the event from the provider and applies what it finds.
func (r *Reconciler) refresh(ctx context.Context, room *models.Room, mailbox, eventID string) (Outcome, error) {
	ev, err := r.calendar.GetEvent(ctx, mailbox, eventID)
	if err != nil {
		if graph.IsNotFound(err) {
			return r.cancelLinked(ctx, eventID, "event not found")
		}
		return "", err
	}

	return r.apply(ctx, room, mailbox, ev)
}

func (r *Reconciler) apply(ctx context.Context, room *models.Room, mailbox string, ev *graph.Event) (Outcome, error) {
	if ev.IsCancelled {
		return r.cancelLinked(ctx, ev.ID, "event cancelled")
	}

	d, err := derive(ev, mailbox)
	if err != nil {
		return "", err
	}

	existing, err := r.storage.FindBookingByExternalEventID(ctx, ev.ID)
	switch {
	case err == nil:
		return r.update(ctx, existing, d)
	case !errors.Is(err, storage.ErrBookingNotFound):
		return "", err
	}

	conflict, err := r.storage.CheckConflict(ctx, room.ID, d.start, d.end, 0)
	if err != nil {
		return "", err
	}
	if conflict {
		// Bookings already in the ledger take precedence.
		r.log.Info("external event dropped: room already booked",
			slog.Int64("room_id", room.ID),
			slog.String("event_id", ev.ID),
			slog.Time("start", d.start),
			slog.Time("end", d.end),
		)
		return OutcomeConflict, nil
	}

	b, err := r.storage.CreateBooking(ctx, d.newBooking(room.ID))
	if errors.Is(err, storage.ErrBookingOverlap) {
		// A direct booking landed between the check and the insert.
		r.log.Info("external event dropped: room booked concurrently",
			slog.Int64("room_id", room.ID),
			slog.String("event_id", ev.ID),
		)
		return OutcomeConflict, nil
	}
	if errors.Is(err, storage.ErrExternalEventExists) {
		// A concurrent delivery of the same event won the insert.
		existing, err = r.storage.FindBookingByExternalEventID(ctx, ev.ID)
		if err != nil {
			return "", err
		}
		return r.update(ctx, existing, d)
	}
	if err != nil {
		return "", err
	}

	r.audit(ctx, b.ID, models.AuditBookingCreated, map[string]any{
		"external_event_id": ev.ID,
		"room_email":        mailbox,
	})
	r.publish(ctx, "booking.created", b)

	return OutcomeCreated, nil
}

func (r *Reconciler) update(ctx context.Context, existing *models.Booking, d derived) (Outcome, error) {
	if existing.Status == models.BookingCancelled {
		return OutcomeCancelledKept, nil
	}
	if d.matches(existing) {
		return OutcomeUnchanged, nil
	}

	keepWindow := false
	if d.windowChanged(existing) {
		conflict, err := r.storage.CheckConflict(ctx, existing.RoomID, d.start, d.end, existing.ID)
		if err != nil {
			return "", err
		}
		if conflict {
			r.log.Warn("external reschedule ignored: room already booked",
				slog.Int64("booking_id", existing.ID),
				slog.Time("start", d.start),
				slog.Time("end", d.end),
			)
			keepWindow = true
		}
	}

	b, err := r.storage.UpdateBookingFromExternal(ctx, existing.ID, d.update(keepWindow))
	if err != nil {
		if errors.Is(err, storage.ErrBookingCancelled) {
			return OutcomeCancelledKept, nil
		}
		return "", err
	}

	r.audit(ctx, b.ID, models.AuditBookingUpdated, map[string]any{
		"external_event_id": *existing.ExternalEventID,
		"window_kept":       keepWindow,
	})
	r.publish(ctx, "booking.updated", b)

	return OutcomeUpdated, nil
}

// cancelLinked cancels the confirmed booking linked to eventID, if any.
func (r *Reconciler) cancelLinked(ctx context.Context, eventID, reason string) (Outcome, error) {
	existing, err := r.storage.FindBookingByExternalEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return OutcomeIgnored, nil
		}
		return "", err
	}
	if existing.Status != models.BookingConfirmed {
		return OutcomeIgnored, nil
	}

	b, err := r.storage.CancelBooking(ctx, existing.ID)
	if err != nil {
		return "", err
	}

	r.audit(ctx, b.ID, models.AuditBookingCancelled, map[string]any{
		"external_event_id": eventID,
		"reason":            reason,
	})
	r.publish(ctx, "booking.cancelled", b)

	return OutcomeCancelled, nil
}

// audit records a system action. A failed audit write does not undo the mutation.
func (r *Reconciler) audit(ctx context.Context, bookingID int64, action string, details map[string]any) {
	raw, err := json.Marshal(details)
	if err != nil {
		r.log.Warn("failed to encode audit details", sl.Err(err))
		raw = nil
	}

	err = r.storage.WriteAudit(ctx, models.AuditEntry{
		BookingID: bookingID,
		Action:    action,
		Source:    models.AuditSourceCalendarSync,
		Details:   raw,
	})
	if err != nil {
		r.log.Warn("failed to write audit entry",
			slog.Int64("booking_id", bookingID),
			slog.String("action", action),
			sl.Err(err),
		)
	}
}

func (r *Reconciler) publish(ctx context.Context, action string, b *models.Booking) {
	if r.pub == nil {
		return
	}

	err := r.pub.Publish(ctx, notify.TopicBookings, notify.Change{
		Action:     action,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		Source:     models.AuditSourceCalendarSync,
		OccurredAt: r.now().UTC(),
	})
	if err != nil {
		r.log.Warn("failed to publish booking change", slog.String("action", action), sl.Err(err))
	}
}

// ResyncReport summarises a ResyncRoom run.
type ResyncReport struct {
	RoomID   int64           `json:"room_id"`
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	Events   int             `json:"events"`
	Outcomes map[Outcome]int `json:"outcomes"`
	Errors   []string        `json:"errors"`
}

// ResyncRoom reads the room calendar for the resync window and applies every
// event as if a notification had arrived for it. It recovers changes missed
// while a subscription was down. Deletions outside the window are not seen.
func (r *Reconciler) ResyncRoom(ctx context.Context, roomID int64) (ResyncReport, error) {
	const op = "calsync.reconcile.ResyncRoom"

	log := r.log.With(slog.String("op", op), slog.Int64("room_id", roomID))

	room, err := r.storage.GetRoom(ctx, roomID)
	if err != nil {
		return ResyncReport{}, fmt.Errorf("%s: %w", op, err)
	}

	mailbox := room.Mailbox()
	if mailbox == "" {
		return ResyncReport{}, fmt.Errorf("%s: %w", op, ErrNoMailbox)
	}

	from := r.now().UTC()
	report := ResyncReport{
		RoomID:   roomID,
		From:     from,
		To:       from.Add(r.resyncWindow),
		Outcomes: map[Outcome]int{},
		Errors:   []string{},
	}

	events, err := r.calendar.ListEvents(ctx, mailbox, report.From, report.To)
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}

	report.Events = len(events)

	for i := range events {
		if ctx.Err() != nil {
			return report, fmt.Errorf("%s: %w", op, ctx.Err())
		}

		outcome, err := r.apply(ctx, room, mailbox, &events[i])
		if err != nil {
			log.Warn("failed to apply event", slog.String("event_id", events[i].ID), sl.Err(err))
			outcome = OutcomeFailed
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", events[i].ID, err))
		}
		report.Outcomes[outcome]++
	}

	log.Info("room resynced", slog.Int("events", report.Events), slog.Any("outcomes", report.Outcomes))

	return report, nil
}
