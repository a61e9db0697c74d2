package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestToken_IsExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "expired",
			expiresAt: now.Add(-1 * time.Hour),
			want:      true,
		},
		{
			name:      "expires soon (within margin)",
			expiresAt: now.Add(30 * time.Second),
			want:      true,
		},
		{
			name:      "valid",
			expiresAt: now.Add(1 * time.Hour),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &Token{ExpiresAt: tt.expiresAt}
			if got := token.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newTokenServer(t *testing.T, handler func(r *http.Request) (int, tokenResponse)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			t.Errorf("Expected Content-Type application/x-www-form-urlencoded")
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse form: %v", err)
		}
		status, resp := handler(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestTokenClient(url, secret string) *TokenClient {
	cfg := NewConfig("test_client")
	cfg.ClientSecret = secret
	cfg.TokenURL = url
	return NewTokenClient(cfg, 2*time.Second)
}

func TestExchangeCode(t *testing.T) {
	server := newTokenServer(t, func(r *http.Request) (int, tokenResponse) {
		if r.FormValue("grant_type") != "authorization_code" {
			t.Errorf("Expected grant_type authorization_code")
		}
		if r.FormValue("code") != "test_code" {
			t.Errorf("Expected code test_code")
		}
		if r.FormValue("client_id") != "test_client" {
			t.Errorf("Expected client_id test_client")
		}
		if r.FormValue("code_verifier") != "test_verifier" {
			t.Errorf("Expected code_verifier test_verifier")
		}
		if _, _, ok := r.BasicAuth(); ok {
			t.Errorf("Did not expect basic auth without a client secret")
		}
		return http.StatusOK, tokenResponse{
			AccessToken:  "access_token_123",
			TokenType:    "Bearer",
			Scope:        "user-read-currently-playing",
			ExpiresIn:    3600,
			RefreshToken: "refresh_token_456",
		}
	})

	client := newTestTokenClient(server.URL, "")
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	token, err := client.ExchangeCode(context.Background(), "test_code", DefaultRedirectURI, "test_verifier")
	if err != nil {
		t.Fatalf("ExchangeCode() error = %v", err)
	}
	if token.AccessToken != "access_token_123" {
		t.Errorf("AccessToken = %q, want %q", token.AccessToken, "access_token_123")
	}
	if token.RefreshToken != "refresh_token_456" {
		t.Errorf("RefreshToken = %q, want %q", token.RefreshToken, "refresh_token_456")
	}
	if want := fixed.Add(time.Hour); !token.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", token.ExpiresAt, want)
	}
}

func TestExchangeCodeError(t *testing.T) {
	server := newTokenServer(t, func(*http.Request) (int, tokenResponse) {
		return http.StatusBadRequest, tokenResponse{
			Error:     "invalid_grant",
			ErrorDesc: "Authorization code expired",
		}
	})

	_, err := newTestTokenClient(server.URL, "").ExchangeCode(context.Background(), "old", DefaultRedirectURI, "v")
	if err == nil {
		t.Fatal("Expected error for invalid_grant")
	}
	if !strings.Contains(err.Error(), "invalid_grant") {
		t.Errorf("error = %v, want it to mention invalid_grant", err)
	}
}

func TestRefresh(t *testing.T) {
	server := newTokenServer(t, func(r *http.Request) (int, tokenResponse) {
		if r.FormValue("grant_type") != "refresh_token" {
			t.Errorf("Expected grant_type refresh_token")
		}
		if r.FormValue("refresh_token") != "old_refresh" {
			t.Errorf("Expected refresh_token old_refresh")
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "test_client" || pass != "s3cret" {
			t.Errorf("Expected basic auth with client credentials")
		}
		return http.StatusOK, tokenResponse{
			AccessToken: "new_access_token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
		}
	})

	token, err := newTestTokenClient(server.URL, "s3cret").Refresh(context.Background(), "old_refresh")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if token.AccessToken != "new_access_token" {
		t.Errorf("AccessToken = %q, want %q", token.AccessToken, "new_access_token")
	}
	if token.RefreshToken != "old_refresh" {
		t.Errorf("RefreshToken = %q, want the previous one kept", token.RefreshToken)
	}
}

func TestRefreshUnexpectedStatus(t *testing.T) {
	server := newTokenServer(t, func(*http.Request) (int, tokenResponse) {
		return http.StatusServiceUnavailable, tokenResponse{}
	})

	_, err := newTestTokenClient(server.URL, "").Refresh(context.Background(), "r")
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("Refresh() error = %v, want unexpected status 503", err)
	}
}

func TestRequestTokenContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestTokenClient("http://127.0.0.1:1/token", "").ExchangeCode(ctx, "code", DefaultRedirectURI, "verifier")
	if err == nil {
		t.Error("Expected error for cancelled context")
	}
}
