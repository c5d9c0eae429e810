package removeSubscription

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/http-server/handlers/sync/removeSubscription/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"roomBooker/internal/storage"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveSubscriptionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		id             string
		mockSetup      func(m *mocks.SubscriptionRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			id:   "3",
			mockSetup: func(m *mocks.SubscriptionRemover) {
				m.On("Remove", mock.Anything, int64(3)).Return(lifecycle.Removal{
					SubscriptionID: 3,
					RoomID:         1,
					RoomEmail:      "pacific@x.com",
					Remote:         lifecycle.BestEffort{Attempted: true},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","removed":{"subscription_id":3,"room_id":1,"room_email":"pacific@x.com",` +
				`"remote":{"attempted":true}}}`,
		},
		{
			name:           "Invalid id",
			id:             "abc",
			mockSetup:      func(m *mocks.SubscriptionRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid subscription id format"}`,
		},
		{
			name: "Not found",
			id:   "9",
			mockSetup: func(m *mocks.SubscriptionRemover) {
				m.On("Remove", mock.Anything, int64(9)).
					Return(lifecycle.Removal{}, fmt.Errorf("calsync.lifecycle.Remove: %w", storage.ErrSubscriptionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"subscription not found"}`,
		},
		{
			name: "Storage failure",
			id:   "3",
			mockSetup: func(m *mocks.SubscriptionRemover) {
				m.On("Remove", mock.Anything, int64(3)).Return(lifecycle.Removal{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to remove subscription"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remover := mocks.NewSubscriptionRemover(t)
			tc.mockSetup(remover)

			router := chi.NewRouter()
			router.Delete("/sync/subscriptions/{id}", New(logger, remover))

			req, err := http.NewRequest(http.MethodDelete, "/sync/subscriptions/"+tc.id, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
