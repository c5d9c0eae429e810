package graphNotification

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"roomBooker/internal/calsync/reconcile"
	"roomBooker/internal/http-server/handlers/webhook/graphNotification/mocks"
	"roomBooker/internal/lib/logger/handlers/slogdiscard"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const batch = `{"value":[
	{"subscriptionId":"S1","clientState":"secret","changeType":"created",
	 "resource":"Users/pacific@x.com/Events/E1",
	 "resourceData":{"@odata.type":"#Microsoft.Graph.Event","id":"E1"}},
	{"subscriptionId":"S1","clientState":"secret","changeType":"deleted",
	 "resource":"Users/pacific@x.com/Events/E2"}
]}`

func TestGraphNotificationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(m *mocks.NotificationQueue)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Validation handshake",
			url:            "/webhooks/graph?validationToken=abc%20123",
			mockSetup:      func(m *mocks.NotificationQueue) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "abc 123",
		},
		{
			name:        "Batch queued",
			url:         "/webhooks/graph",
			requestBody: batch,
			mockSetup: func(m *mocks.NotificationQueue) {
				m.On("Enqueue", mock.Anything, mock.MatchedBy(func(ns []reconcile.Notification) bool {
					return len(ns) == 2 &&
						ns[0].EventID() == "E1" &&
						ns[0].ChangeType == reconcile.ChangeCreated &&
						ns[1].EventID() == "E2"
				})).Return(true)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:        "Queue full",
			url:         "/webhooks/graph",
			requestBody: batch,
			mockSetup: func(m *mocks.NotificationQueue) {
				m.On("Enqueue", mock.Anything, mock.Anything).Return(false)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Empty batch",
			url:            "/webhooks/graph",
			requestBody:    `{"value":[]}`,
			mockSetup:      func(m *mocks.NotificationQueue) {},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Undecodable body",
			url:            "/webhooks/graph",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.NotificationQueue) {},
			expectedStatus: http.StatusAccepted,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			queue := mocks.NewNotificationQueue(t)
			tc.mockSetup(queue)

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, queue).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
				assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
			}
		})
	}
}

type slowProcessor struct {
	delay time.Duration
	done  atomic.Int32
}

func (p *slowProcessor) ProcessBatch(ctx context.Context, batch []reconcile.Notification) []reconcile.Outcome {
	time.Sleep(p.delay)
	p.done.Add(1)
	return make([]reconcile.Outcome, len(batch))
}

// A batch that takes longer than the server's write timeout must still be
// acknowledged, and must still be processed after the response is gone.
func TestSlowBatchIsAcknowledgedWithinWriteTimeout(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	processor := &slowProcessor{delay: 600 * time.Millisecond}
	queue := reconcile.NewQueue(logger, processor, 1, 1)
	queue.Start()
	t.Cleanup(queue.Stop)

	router := chi.NewRouter()
	router.Post("/webhooks/graph", New(logger, queue))

	srv := httptest.NewUnstartedServer(router)
	srv.Config.WriteTimeout = 400 * time.Millisecond
	srv.Start()
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+"/webhooks/graph", "application/json", bytes.NewBufferString(batch))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Zero(t, processor.done.Load(), "batch must not run before the acknowledgement")

	assert.Eventually(t, func() bool { return processor.done.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}
