package removeSubscription

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Removed *lifecycle.Removal `json:"removed,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionRemover
type SubscriptionRemover interface {
	Remove(ctx context.Context, id int64) (lifecycle.Removal, error)
}

func New(log *slog.Logger, remover SubscriptionRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.removeSubscription.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid subscription id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid subscription id format"))
			return
		}

		removed, err := remover.Remove(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrSubscriptionNotFound) {
				log.Info("subscription not found", slog.Int64("subscription_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("subscription not found"))
				return
			}

			log.Error("failed to remove subscription", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove subscription"))
			return
		}

		log.Info("subscription removed",
			slog.Int64("subscription_id", id),
			slog.Bool("remote_deleted", removed.Remote.Succeeded()),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Removed:  &removed,
		})
	}
}
