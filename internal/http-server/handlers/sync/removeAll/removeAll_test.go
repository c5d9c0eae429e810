package removeAll

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/http-server/handlers/sync/removeAll/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveAllHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Counts remote failures", func(t *testing.T) {
		t.Parallel()

		remover := mocks.NewAllRemover(t)
		remover.On("DisableAll", mock.Anything).Return([]lifecycle.Removal{
			{SubscriptionID: 1, RoomID: 1, Remote: lifecycle.BestEffort{Attempted: true}},
			{SubscriptionID: 2, RoomID: 2, Remote: lifecycle.BestEffort{Attempted: true, Err: errors.New("graph: status 500")}},
			{SubscriptionID: 3, RoomID: 3},
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/sync/subscriptions", nil)
		rr := httptest.NewRecorder()

		New(logger, remover).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.Len(t, resp.Removed, 3)
		assert.Equal(t, 1, resp.RemoteFailed)
	})

	t.Run("Storage failure", func(t *testing.T) {
		t.Parallel()

		remover := mocks.NewAllRemover(t)
		remover.On("DisableAll", mock.Anything).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodDelete, "/sync/subscriptions", nil)
		rr := httptest.NewRecorder()

		New(logger, remover).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to remove subscriptions"}`, rr.Body.String())
	})
}
