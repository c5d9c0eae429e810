package providerRooms

import (
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/graph"
	"roomBooker/internal/http-server/handlers/sync/providerRooms/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProviderRoomsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.RoomLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("ListRooms", mock.Anything).Return([]graph.RoomResource{
					{ID: "R1", DisplayName: "Pacific", EmailAddress: "pacific@x.com", Capacity: 8},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","rooms":[{"id":"R1","displayName":"Pacific",` +
				`"emailAddress":"pacific@x.com","capacity":8}]}`,
		},
		{
			name: "Provider failure",
			mockSetup: func(m *mocks.RoomLister) {
				m.On("ListRooms", mock.Anything).Return(nil, &graph.ProviderError{StatusCode: http.StatusUnauthorized})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to list provider rooms"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewRoomLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/sync/provider-rooms", nil)
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
