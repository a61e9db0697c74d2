package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) AccessToken(context.Context) (string, error) {
	return string(s), nil
}

type failingToken struct{}

func (failingToken) AccessToken(context.Context) (string, error) {
	return "", errors.New("not authenticated")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New(zap.NewNop(), staticToken("tok"), 0)
	c.SetBaseURL(server.URL)
	return c
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params map[string]string
		want   string
	}{
		{
			name:   "no params",
			path:   "/me",
			params: nil,
			want:   "/me",
		},
		{
			name:   "empty params",
			path:   "/me",
			params: map[string]string{},
			want:   "/me",
		},
		{
			name:   "single param",
			path:   "/me/player/currently-playing",
			params: map[string]string{"market": "from_token"},
			want:   "/me/player/currently-playing?market=from_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildURL(tt.path, tt.params); got != tt.want {
				t.Errorf("BuildURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	err := &APIError{}
	err.ErrorInfo.Status = 401
	err.ErrorInfo.Message = "Invalid access token"

	expected := "Spotify API error 401: Invalid access token"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestParseAPIErrorFallback(t *testing.T) {
	apiErr := ParseAPIError(&Response{StatusCode: 502, Body: []byte("<html>bad gateway</html>")})
	if apiErr.ErrorInfo.Status != 502 {
		t.Errorf("Status = %d, want 502", apiErr.ErrorInfo.Status)
	}
	if apiErr.ErrorInfo.Message != "Bad Gateway" {
		t.Errorf("Message = %q, want %q", apiErr.ErrorInfo.Message, "Bad Gateway")
	}
}

func TestDoSendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	resp, err := c.Do(context.Background(), http.MethodGet, "/me")
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusTeapot)
	}
}

func TestDoTokenError(t *testing.T) {
	c := New(zap.NewNop(), failingToken{}, 0)
	if _, err := c.Do(context.Background(), http.MethodGet, "/me"); err == nil {
		t.Error("Do() expected token error")
	}
}

func TestCurrentlyPlaying(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantPlaying *bool
		wantMessage string
		wantURL     string
	}{
		{
			name:        "playing",
			status:      http.StatusOK,
			body:        `{"is_playing":true,"item":{"name":"Song","album":{"images":[{"url":"a"},{"url":"b"},{"url":"c"}]}}}`,
			wantPlaying: boolPtr(true),
			wantURL:     "c",
		},
		{
			name:        "null is_playing",
			status:      http.StatusOK,
			body:        `{"is_playing":null,"item":null}`,
			wantPlaying: nil,
		},
		{
			name:   "no content",
			status: http.StatusNoContent,
		},
		{
			name:        "error document",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"status":401,"message":"The access token expired"}}`,
			wantMessage: "The access token expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/me/player/currently-playing" {
					t.Errorf("path = %q", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			status, doc, err := c.CurrentlyPlaying(context.Background(), "")
			if err != nil {
				t.Fatalf("CurrentlyPlaying() error = %v", err)
			}
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if (doc.IsPlaying == nil) != (tt.wantPlaying == nil) ||
				(doc.IsPlaying != nil && *doc.IsPlaying != *tt.wantPlaying) {
				t.Errorf("IsPlaying = %v, want %v", doc.IsPlaying, tt.wantPlaying)
			}
			if doc.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", doc.Message, tt.wantMessage)
			}
			if tt.wantURL != "" {
				if got := *doc.Item.Album.Images[2].URL; got != tt.wantURL {
					t.Errorf("image url = %q, want %q", got, tt.wantURL)
				}
			}
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"u1","display_name":"Ada","product":"premium"}`))
	})

	user, err := c.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser() error = %v", err)
	}
	if user.DisplayName != "Ada" {
		t.Errorf("DisplayName = %q, want %q", user.DisplayName, "Ada")
	}
}

func TestGetReturnsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"status":403,"message":"Premium required"}}`))
	})

	err := c.Get(context.Background(), "/me", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.ErrorInfo.Status != 403 {
		t.Errorf("Get() error = %v, want APIError 403", err)
	}
}

func boolPtr(b bool) *bool { return &b }
