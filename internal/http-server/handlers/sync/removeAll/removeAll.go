package removeAll

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
	Removed      []lifecycle.Removal `json:"removed"`
	RemoteFailed int                 `json:"remote_failed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AllRemover
type AllRemover interface {
	DisableAll(ctx context.Context) ([]lifecycle.Removal, error)
}

// New removes every registered subscription. Provider failures are reported
// per row; local rows are removed regardless.
func New(log *slog.Logger, remover AllRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.removeAll.New"

		log := log.With(slog.String("op", op))

		removed, err := remover.DisableAll(r.Context())
		if err != nil {
			log.Error("failed to remove subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove subscriptions"))
			return
		}

		failed := 0
		for _, rm := range removed {
			if rm.Remote.Attempted && rm.Remote.Err != nil {
				failed++
			}
		}

		log.Info("subscriptions removed", slog.Int("removed", len(removed)), slog.Int("remote_failed", failed))

		if removed == nil {
			removed = []lifecycle.Removal{}
		}

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Removed:      removed,
			RemoteFailed: failed,
		})
	}
}
