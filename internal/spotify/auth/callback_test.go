package auth

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

// callback sends a redirect to the server and returns once it has been
// handled.
func callback(t *testing.T, server *CallbackServer, query string) {
	t.Helper()
	url := fmt.Sprintf("http://localhost:%d/callback?%s", server.Port(), query)
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Failed to make callback request: %v", err)
	}
	_ = resp.Body.Close()
}

func TestCallbackServer(t *testing.T) {
	// Create server on random port (0)
	server, err := NewCallbackServer(0)
	if err != nil {
		t.Fatalf("NewCallbackServer() error = %v", err)
	}

	server.Start()
	defer func() { _ = server.Shutdown(context.Background()) }()

	if server.Port() == 0 {
		t.Fatal("Server port should not be 0 after starting")
	}

	callback(t, server, "code=test_code&state=test_state")

	result, ok := server.Poll()
	if !ok {
		t.Fatal("Poll() found no result after the callback returned")
	}
	if result.Code != "test_code" {
		t.Errorf("Code = %q, want %q", result.Code, "test_code")
	}
	if result.State != "test_state" {
		t.Errorf("State = %q, want %q", result.State, "test_state")
	}
	if result.Error != "" {
		t.Errorf("Error = %q, want empty", result.Error)
	}
}

func TestCallbackServerError(t *testing.T) {
	server, err := NewCallbackServer(0)
	if err != nil {
		t.Fatalf("NewCallbackServer() error = %v", err)
	}

	server.Start()
	defer func() { _ = server.Shutdown(context.Background()) }()

	callback(t, server, "error=access_denied&state=test_state")

	result, ok := server.Poll()
	if !ok {
		t.Fatal("Poll() found no result after the callback returned")
	}
	if result.Error != "access_denied" {
		t.Errorf("Error = %q, want %q", result.Error, "access_denied")
	}
}

func TestCallbackServerPoll(t *testing.T) {
	server, err := NewCallbackServer(0)
	if err != nil {
		t.Fatalf("NewCallbackServer() error = %v", err)
	}

	server.Start()
	defer func() { _ = server.Shutdown(context.Background()) }()

	if _, ok := server.Poll(); ok {
		t.Fatal("Poll() reported a result before any callback")
	}

	callback(t, server, "code=c1&state=s1")

	result, ok := server.Poll()
	if !ok {
		t.Fatal("Poll() found no result after the callback returned")
	}
	if result.Code != "c1" {
		t.Errorf("Code = %q, want %q", result.Code, "c1")
	}
	if _, ok := server.Poll(); ok {
		t.Error("Poll() returned the same result twice")
	}
}
