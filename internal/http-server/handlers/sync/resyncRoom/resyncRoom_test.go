package resyncRoom

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/calsync/reconcile"
	"roomBooker/internal/graph"
	"roomBooker/internal/http-server/handlers/sync/resyncRoom/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/storage"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResyncRoomHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		roomID         string
		mockSetup      func(m *mocks.RoomResyncer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			roomID: "1",
			mockSetup: func(m *mocks.RoomResyncer) {
				m.On("ResyncRoom", mock.Anything, int64(1)).Return(reconcile.ResyncReport{
					RoomID:   1,
					Events:   2,
					Outcomes: map[reconcile.Outcome]int{reconcile.OutcomeCreated: 1, reconcile.OutcomeUnchanged: 1},
					Errors:   []string{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				require.NotNil(t, resp.Report)
				assert.Equal(t, 2, resp.Report.Events)
				assert.Equal(t, 1, resp.Report.Outcomes[reconcile.OutcomeCreated])
			},
		},
		{
			name:           "Invalid room id",
			roomID:         "abc",
			mockSetup:      func(m *mocks.RoomResyncer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid room id format"}`,
		},
		{
			name:   "Room not found",
			roomID: "9",
			mockSetup: func(m *mocks.RoomResyncer) {
				m.On("ResyncRoom", mock.Anything, int64(9)).
					Return(reconcile.ResyncReport{}, fmt.Errorf("calsync.reconcile.ResyncRoom: %w", storage.ErrRoomNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"room not found"}`,
		},
		{
			name:   "No mailbox",
			roomID: "2",
			mockSetup: func(m *mocks.RoomResyncer) {
				m.On("ResyncRoom", mock.Anything, int64(2)).
					Return(reconcile.ResyncReport{}, fmt.Errorf("calsync.reconcile.ResyncRoom: %w", reconcile.ErrNoMailbox))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"room has no mailbox address"}`,
		},
		{
			name:   "Provider failure",
			roomID: "1",
			mockSetup: func(m *mocks.RoomResyncer) {
				m.On("ResyncRoom", mock.Anything, int64(1)).
					Return(reconcile.ResyncReport{}, &graph.ProviderError{StatusCode: http.StatusForbidden})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"calendar provider request failed"}`,
		},
		{
			name:   "Internal failure",
			roomID: "1",
			mockSetup: func(m *mocks.RoomResyncer) {
				m.On("ResyncRoom", mock.Anything, int64(1)).Return(reconcile.ResyncReport{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to resync room"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resyncer := mocks.NewRoomResyncer(t)
			tc.mockSetup(resyncer)

			router := chi.NewRouter()
			router.Post("/sync/rooms/{id}/resync", New(logger, resyncer))

			req, err := http.NewRequest(http.MethodPost, "/sync/rooms/"+tc.roomID+"/resync", nil)
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
