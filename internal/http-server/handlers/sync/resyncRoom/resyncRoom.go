package resyncRoom

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"roomBooker/internal/calsync/reconcile"
	"roomBooker/internal/graph"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Report *reconcile.ResyncReport `json:"report,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomResyncer
type RoomResyncer interface {
	ResyncRoom(ctx context.Context, roomID int64) (reconcile.ResyncReport, error)
}

// New replays the room's upcoming calendar events through the reconciler.
func New(log *slog.Logger, resyncer RoomResyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.resyncRoom.New"

		log := log.With(slog.String("op", op))

		roomID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		report, err := resyncer.ResyncRoom(r.Context(), roomID)
		if err != nil {
			log.Error("failed to resync room", slog.Int64("room_id", roomID), sl.Err(err))

			var pe *graph.ProviderError
			switch {
			case errors.Is(err, storage.ErrRoomNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			case errors.Is(err, reconcile.ErrNoMailbox):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(reconcile.ErrNoMailbox.Error()))
			case errors.As(err, &pe):
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("calendar provider request failed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to resync room"))
			}
			return
		}

		log.Info("room resynced", slog.Int64("room_id", roomID), slog.Int("events", report.Events))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Report:   &report,
		})
	}
}
