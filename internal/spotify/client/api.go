package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetCurrentUser returns the current user's profile.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.Get(ctx, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentlyPlaying queries the currently playing item. The status code is
// returned as is; the body is decoded when present. Error bodies carry their
// message in the returned document.
func (c *Client) CurrentlyPlaying(ctx context.Context, market string) (int, *CurrentlyPlaying, error) {
	path := "/me/player/currently-playing"
	if market != "" {
		path = BuildURL(path, map[string]string{"market": market})
	}

	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return 0, nil, err
	}

	doc := &CurrentlyPlaying{}
	if len(resp.Body) == 0 {
		return resp.StatusCode, doc, nil
	}

	if resp.StatusCode >= 400 {
		doc.Message = ParseAPIError(resp).ErrorInfo.Message
		return resp.StatusCode, doc, nil
	}

	if err := json.Unmarshal(resp.Body, doc); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.StatusCode, doc, nil
}
