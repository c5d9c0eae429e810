package listRoomBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/booking"
	"roomBooker/internal/http-server/handlers/booking/listRoomBookings/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListRoomBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	at := func(want time.Time) interface{} {
		return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.RoomBookingsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Default window",
			url:  "/rooms/1/bookings",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("ListForRoom", mock.Anything, int64(1), at(now), at(now.Add(7*24*time.Hour))).
					Return([]models.Booking{{ID: 1, Title: "Standup"}, {ID: 2, Title: "Review"}}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 2)
				assert.Equal(t, "Review", resp.Bookings[1].Title)
			},
		},
		{
			name: "Explicit window",
			url:  "/rooms/1/bookings?from=2024-01-02T00:00:00Z&to=2024-01-03T00:00:00Z",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("ListForRoom", mock.Anything, int64(1),
					at(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
					at(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
				).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name:           "Invalid room id",
			url:            "/rooms/abc/bookings",
			mockSetup:      func(m *mocks.RoomBookingsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room id format"}`,
		},
		{
			name:           "Invalid from",
			url:            "/rooms/1/bookings?from=yesterday",
			mockSetup:      func(m *mocks.RoomBookingsLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid from parameter"}`,
		},
		{
			name: "Inverted window",
			url:  "/rooms/1/bookings?from=2024-01-03T00:00:00Z&to=2024-01-02T00:00:00Z",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("ListForRoom", mock.Anything, int64(1), mock.Anything, mock.Anything).
					Return(nil, &booking.ValidationError{Field: "to", Message: "must be after from"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field to must be after from"}`,
		},
		{
			name: "Room not found",
			url:  "/rooms/9/bookings",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("ListForRoom", mock.Anything, int64(9), mock.Anything, mock.Anything).
					Return(nil, storage.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name: "Internal server error",
			url:  "/rooms/1/bookings",
			mockSetup: func(m *mocks.RoomBookingsLister) {
				m.On("ListForRoom", mock.Anything, int64(1), mock.Anything, mock.Anything).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewRoomBookingsLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/rooms/{id}/bookings", newHandler(logger, lister, func() time.Time { return now }))

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
