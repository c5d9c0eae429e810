package enableSync

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/graph"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Result lifecycle.Result `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomGetter
type RoomGetter interface {
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SyncEnabler
type SyncEnabler interface {
	EnableForRoom(ctx context.Context, roomID int64, roomEmail string) lifecycle.Result
}

// New subscribes to the room's calendar, renewing an existing subscription
// when one is registered.
func New(log *slog.Logger, rooms RoomGetter, enabler SyncEnabler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.enableSync.New"

		log := log.With(slog.String("op", op))

		roomID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		room, err := rooms.GetRoom(r.Context(), roomID)
		if err != nil {
			if errors.Is(err, storage.ErrRoomNotFound) {
				log.Info("room not found", slog.Int64("room_id", roomID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
				return
			}

			log.Error("failed to get room", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room"))
			return
		}

		if room.Mailbox() == "" {
			log.Info("room has no mailbox", slog.Int64("room_id", roomID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(lifecycle.ErrNoMailbox.Error()))
			return
		}

		res := enabler.EnableForRoom(r.Context(), room.ID, room.Mailbox())
		if !res.Success {
			log.Error("failed to enable sync", slog.Int64("room_id", roomID), slog.String("error", res.Error))

			status := http.StatusBadGateway
			if res.Error == graph.ErrNotConfigured.Error() {
				status = http.StatusServiceUnavailable
			}

			render.Status(r, status)
			render.JSON(w, r, Response{
				Response: response.Error(res.Error),
				Result:   res,
			})
			return
		}

		log.Info("sync enabled",
			slog.Int64("room_id", roomID),
			slog.String("subscription_id", res.SubscriptionID),
			slog.Bool("renewed", res.Renewed),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Result:   res,
		})
	}
}
