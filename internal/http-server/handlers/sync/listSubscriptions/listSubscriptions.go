package listSubscriptions

import (
	"context"
	"log/slog"
	"net/http"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Subscriptions []lifecycle.View `json:"subscriptions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionLister
type SubscriptionLister interface {
	List(ctx context.Context) ([]lifecycle.View, error)
}

func New(log *slog.Logger, lister SubscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.listSubscriptions.New"

		log := log.With(slog.String("op", op))

		subs, err := lister.List(r.Context())
		if err != nil {
			log.Error("failed to list subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list subscriptions"))
			return
		}

		log.Info("subscriptions listed", slog.Int("count", len(subs)))

		if subs == nil {
			subs = []lifecycle.View{}
		}

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Subscriptions: subs,
		})
	}
}
