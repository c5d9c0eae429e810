package syncgate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSyncGate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		enabled        bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Enabled passes through",
			enabled:        true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Disabled short-circuits",
			enabled:        false,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"calendar sync is not configured"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			router.With(New(tc.enabled)).Get("/sync/subscriptions", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"OK"}`))
			})

			req := httptest.NewRequest(http.MethodGet, "/sync/subscriptions", nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
