package netprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIsReachable(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected bool
	}{
		{
			name:     "204",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) },
			expected: true,
		},
		{
			name:     "200 portal page",
			handler:  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("<html>login</html>")) },
			expected: false,
		},
		{
			name: "redirect",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/login", http.StatusFound)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			probe := New(zap.NewNop(), server.URL, time.Second)
			assert.Equal(t, tt.expected, probe.IsReachable(context.Background()))
		})
	}
}

func TestIsReachableTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	defer close(release)

	probe := New(zap.NewNop(), server.URL, 50*time.Millisecond)
	assert.False(t, probe.IsReachable(context.Background()))
}

func TestNewDefaults(t *testing.T) {
	probe := New(zap.NewNop(), "", 0)
	assert.Equal(t, DefaultURL, probe.url)
	assert.Equal(t, DefaultTimeout, probe.client.Timeout)
}
