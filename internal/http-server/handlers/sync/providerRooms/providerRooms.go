package providerRooms

import (
	"context"
	"log/slog"
	"net/http"
	"roomBooker/internal/graph"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Rooms []graph.RoomResource `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomLister
type RoomLister interface {
	ListRooms(ctx context.Context) ([]graph.RoomResource, error)
}

// New lists the room resources known to the calendar provider.
func New(log *slog.Logger, lister RoomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sync.providerRooms.New"

		log := log.With(slog.String("op", op))

		rooms, err := lister.ListRooms(r.Context())
		if err != nil {
			log.Error("failed to list provider rooms", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to list provider rooms"))
			return
		}

		if rooms == nil {
			rooms = []graph.RoomResource{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Rooms:    rooms,
		})
	}
}
