package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	RoomID        int64     `json:"room_id" validate:"required"`
	UserID        *int64    `json:"user_id,omitempty"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description,omitempty"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	EndTime       time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	OnlineMeeting bool      `json:"online_meeting"`
	Attendees     []string  `json:"attendees,omitempty" validate:"omitempty,dive,email"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Book(ctx context.Context, req booking.Request) (*models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := creator.Book(r.Context(), booking.Request{
			RoomID:        req.RoomID,
			UserID:        req.UserID,
			Title:         req.Title,
			Description:   req.Description,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			OnlineMeeting: req.OnlineMeeting,
			Attendees:     req.Attendees,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			var verr *booking.ValidationError
			switch {
			case errors.As(err, &verr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(verr.Error()))
			case errors.Is(err, booking.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(booking.ErrConflict.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", b.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
