package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// CallbackResult contains the result of the OAuth callback.
type CallbackResult struct {
	Code  string
	State string
	Error string
}

// CallbackServer receives the authorization redirect on the device.
type CallbackServer struct {
	server   *http.Server
	listener net.Listener
	result   chan CallbackResult
}

// NewCallbackServer creates a new callback server on the specified port.
func NewCallbackServer(port int) (*CallbackServer, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}

	cs := &CallbackServer{
		listener: listener,
		result:   make(chan CallbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", cs.handleCallback)

	cs.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return cs, nil
}

// Start begins serving HTTP requests in the background.
func (cs *CallbackServer) Start() {
	go func() {
		_ = cs.server.Serve(cs.listener)
	}()
}

// Poll returns the callback result if one has arrived, without blocking.
func (cs *CallbackServer) Poll() (CallbackResult, bool) {
	select {
	case result := <-cs.result:
		return result, true
	default:
		return CallbackResult{}, false
	}
}

// Shutdown gracefully shuts down the server.
func (cs *CallbackServer) Shutdown(ctx context.Context) error {
	return cs.server.Shutdown(ctx)
}

// Port returns the port the server is listening on.
func (cs *CallbackServer) Port() int {
	return cs.listener.Addr().(*net.TCPAddr).Port
}

func (cs *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result := CallbackResult{
		Code:  query.Get("code"),
		State: query.Get("state"),
		Error: query.Get("error"),
	}

	// Keep the first result; later redirects are answered but dropped.
	select {
	case cs.result <- result:
	default:
	}

	// Respond to the browser
	if result.Error != "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>coverclock: authorization failed</title></head>
<body>
<h1>Authorization failed</h1>
<p>Error: %s</p>
<p>The clock keeps running; reload the authorization link to try again.</p>
</body>
</html>`, result.Error)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>coverclock: authorized</title></head>
<body>
<h1>Authorized</h1>
<p>Album art will appear on the panel the next time a track plays.</p>
</body>
</html>`)
}
