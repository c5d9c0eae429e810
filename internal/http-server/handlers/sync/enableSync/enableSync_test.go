package enableSync

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/graph"
	"roomBooker/internal/http-server/handlers/sync/enableSync/mocks"
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

func TestEnableSyncHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	email := "pacific@x.com"
	pacific := &models.Room{ID: 1, Name: "Pacific", Email: &email, CalendarSyncEnabled: true}
	expires := time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		roomID         string
		mockSetup      func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			roomID: "1",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(1)).Return(pacific, nil)
				enabler.On("EnableForRoom", mock.Anything, int64(1), email).Return(lifecycle.Result{
					RoomID:         1,
					RoomEmail:      email,
					Success:        true,
					Renewed:        true,
					SubscriptionID: "S1",
					ExpiresAt:      expires,
				})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.True(t, resp.Result.Renewed)
				assert.Equal(t, "S1", resp.Result.SubscriptionID)
				assert.True(t, resp.Result.ExpiresAt.Equal(expires))
			},
		},
		{
			name:           "Invalid room id",
			roomID:         "abc",
			mockSetup:      func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room id format"}`,
		},
		{
			name:   "Room not found",
			roomID: "9",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(9)).Return(nil, storage.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:   "Room without mailbox",
			roomID: "2",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(2)).Return(&models.Room{ID: 2, Name: "Atlantic"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"room has no mailbox address"}`,
		},
		{
			name:   "Provider failure",
			roomID: "1",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(1)).Return(pacific, nil)
				enabler.On("EnableForRoom", mock.Anything, int64(1), email).
					Return(lifecycle.Result{RoomID: 1, RoomEmail: email, Error: "graph: status 403"})
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "Error", resp.Status)
				assert.Equal(t, "graph: status 403", resp.Error)
				assert.False(t, resp.Result.Success)
			},
		},
		{
			name:   "Not configured",
			roomID: "1",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(1)).Return(pacific, nil)
				enabler.On("EnableForRoom", mock.Anything, int64(1), email).
					Return(lifecycle.Result{RoomID: 1, RoomEmail: email, Error: graph.ErrNotConfigured.Error()})
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "Storage failure",
			roomID: "1",
			mockSetup: func(rooms *mocks.RoomGetter, enabler *mocks.SyncEnabler) {
				rooms.On("GetRoom", mock.Anything, int64(1)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get room"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rooms := mocks.NewRoomGetter(t)
			enabler := mocks.NewSyncEnabler(t)
			tc.mockSetup(rooms, enabler)

			router := chi.NewRouter()
			router.Post("/sync/rooms/{id}", New(logger, rooms, enabler))

			req, err := http.NewRequest(http.MethodPost, "/sync/rooms/"+tc.roomID, nil)
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
