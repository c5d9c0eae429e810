package subscribeAll

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
	Summary lifecycle.Summary `json:"summary"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllSubscriber
type AllSubscriber interface {
	SubscribeAll(ctx context.Context) (lifecycle.Summary, error)
}

func New(log *slog.Logger, subscriber AllSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.subscribeAll.New"

		log := log.With(slog.String("op", op))

		summary, err := subscriber.SubscribeAll(r.Context())
		if err != nil {
			log.Error("failed to subscribe rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to subscribe rooms"))
			return
		}

		log.Info("rooms subscribed",
			slog.Int("total", summary.Total),
			slog.Int("success", summary.Success),
			slog.Int("failed", summary.Failed),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Summary:  summary,
		})
	}
}
