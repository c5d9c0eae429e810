package disableSync

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
	Removed []lifecycle.Removal `json:"removed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SyncDisabler
type SyncDisabler interface {
	DisableForRoom(ctx context.Context, roomID int64) ([]lifecycle.Removal, error)
}

func New(log *slog.Logger, disabler SyncDisabler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.disableSync.New"

		log := log.With(slog.String("op", op))

		roomID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		removed, err := disabler.DisableForRoom(r.Context(), roomID)
		if errors.Is(err, storage.ErrRoomNotFound) {
			log.Info("room not found", slog.Int64("room_id", roomID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("room not found"))
			return
		}
		if err != nil {
			log.Error("failed to disable sync", slog.Int64("room_id", roomID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to disable sync"))
			return
		}

		log.Info("sync disabled", slog.Int64("room_id", roomID), slog.Int("removed", len(removed)))

		if removed == nil {
			removed = []lifecycle.Removal{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Removed:  removed,
		})
	}
}
