package graphNotification

import (
	"context"
	"log/slog"
	"net/http"
	"roomBooker/internal/calsync/reconcile"
	"roomBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationQueue
type NotificationQueue interface {
	Enqueue(ctx context.Context, batch []reconcile.Notification) bool
}

// New receives calendar change notifications. A request carrying a
// validationToken is the subscription handshake and gets the token echoed
// back. Every other request is acknowledged with 202 as soon as its batch is
// queued, before any notification is processed. A full queue answers 503 so
// the provider redelivers later.
func New(log *slog.Logger, queue NotificationQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webhook.graphNotification.New"

		log := log.With(slog.String("op", op))

		if token := r.URL.Query().Get("validationToken"); token != "" {
			log.Info("subscription validation handshake")
			render.Status(r, http.StatusOK)
			render.PlainText(w, r, token)
			return
		}

		var batch reconcile.Batch

		if err := render.DecodeJSON(r.Body, &batch); err != nil {
			log.Warn("failed to decode notification batch", sl.Err(err))
			w.WriteHeader(http.StatusAccepted)
			return
		}

		if len(batch.Value) == 0 {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		if !queue.Enqueue(r.Context(), batch.Value) {
			log.Warn("notification queue full, asking for redelivery",
				slog.Int("notifications", len(batch.Value)))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		log.Debug("notification batch queued", slog.Int("notifications", len(batch.Value)))

		w.WriteHeader(http.StatusAccepted)
	}
}
