package client

// User represents a Spotify user profile.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Product     string `json:"product"`
}

// Image represents an image resource. Any field may be null.
type Image struct {
	URL    *string `json:"url"`
	Height *int    `json:"height"`
	Width  *int    `json:"width"`
}

// Artist represents a Spotify artist.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album represents a Spotify album.
type Album struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Track represents a Spotify track.
type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
	Album   *Album   `json:"album"`
}

// CurrentlyPlaying is the currently-playing document. Message is filled from
// error responses.
type CurrentlyPlaying struct {
	IsPlaying            *bool  `json:"is_playing"`
	ProgressMS           int    `json:"progress_ms"`
	CurrentlyPlayingType string `json:"currently_playing_type"` // track, episode, ad, unknown
	Item                 *Track `json:"item"`
	Message              string `json:"message,omitempty"`
}
