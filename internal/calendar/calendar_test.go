package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/tessro/coverclock/internal/core/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNullFetcher(t *testing.T) {
	assert.Empty(t, Null{}.Fetch(context.Background()))
}

func TestPollerRateLimits(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	fetcher := mocks.NewMockCalendarFetcher(gomock.NewController(t))

	gomock.InOrder(
		fetcher.EXPECT().Fetch(ctx).Return("standup 10:00"),
		fetcher.EXPECT().Fetch(ctx).Return("lunch 12:00"),
	)

	poller := NewPoller(fetcher, 10*time.Second, clock)

	assert.Equal(t, "standup 10:00", poller.Text(ctx))

	clock.Advance(4 * time.Second)
	assert.Equal(t, "standup 10:00", poller.Text(ctx))

	clock.Advance(4 * time.Second)
	assert.Equal(t, "standup 10:00", poller.Text(ctx))

	clock.Advance(2 * time.Second)
	assert.Equal(t, "lunch 12:00", poller.Text(ctx))
}

func TestPollerKeepsEmptyResult(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	fetcher := mocks.NewMockCalendarFetcher(gomock.NewController(t))

	fetcher.EXPECT().Fetch(ctx).Return("").Times(1)

	poller := NewPoller(fetcher, 0, clock)
	assert.Empty(t, poller.Text(ctx))
	clock.Advance(DefaultInterval - time.Millisecond)
	assert.Empty(t, poller.Text(ctx))
}

func TestHTTPFetcher(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "two lines",
			status:   http.StatusOK,
			body:     "09:00 standup\n13:00 review\n",
			expected: "09:00 standup\n13:00 review",
		},
		{
			name:     "empty",
			status:   http.StatusOK,
			body:     "",
			expected: "",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     "boom",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			fetcher := NewHTTPFetcher(zap.NewNop(), server.URL, time.Second)
			assert.Equal(t, tt.expected, fetcher.Fetch(context.Background()))
		})
	}
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	fetcher := NewHTTPFetcher(zap.NewNop(), url, time.Second)
	assert.Empty(t, fetcher.Fetch(context.Background()))
}
