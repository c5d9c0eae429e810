package listRoomBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const defaultWindow = 7 * 24 * time.Hour

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomBookingsLister
type RoomBookingsLister interface {
	ListForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]models.Booking, error)
}

// New lists a room's bookings in [from, to). Both query parameters are
// RFC 3339; from defaults to now and to defaults to a week after from.
func New(log *slog.Logger, lister RoomBookingsLister) http.HandlerFunc {
	return newHandler(log, lister, time.Now)
}

func newHandler(log *slog.Logger, lister RoomBookingsLister, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listRoomBookings.New"

		log := log.With(slog.String("op", op))

		roomID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		from, err := parseTime(r.URL.Query().Get("from"), now())
		if err != nil {
			log.Error("invalid from parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid from parameter"))
			return
		}

		to, err := parseTime(r.URL.Query().Get("to"), from.Add(defaultWindow))
		if err != nil {
			log.Error("invalid to parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid to parameter"))
			return
		}

		bookings, err := lister.ListForRoom(r.Context(), roomID, from, to)
		if err != nil {
			var verr *booking.ValidationError
			switch {
			case errors.As(err, &verr):
				log.Info("invalid window", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(verr.Error()))
			case errors.Is(err, storage.ErrRoomNotFound):
				log.Info("room not found", slog.Int64("room_id", roomID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
			default:
				log.Error("failed to list bookings", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to list bookings"))
			}
			return
		}

		log.Info("bookings listed", slog.Int64("room_id", roomID), slog.Int("count", len(bookings)))

		if bookings == nil {
			bookings = []models.Booking{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}

func parseTime(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, raw)
}
