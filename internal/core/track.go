package core

// TimeoutMessage is the payload message reported when the playback service
// did not answer in time. A response carrying it is retried once per tick.
const TimeoutMessage = "Timeout receiving headers"

// PlaybackResponse is the raw answer of a currently-playing query.
type PlaybackResponse struct {
	StatusCode int
	Payload    PlaybackPayload
}

// PlaybackPayload holds the fields of the playback document the controller
// consumes. Every link of the artwork path is optional.
type PlaybackPayload struct {
	IsPlaying *bool  `json:"is_playing"`
	Message   string `json:"message,omitempty"`
	Item      *Item  `json:"item,omitempty"`
}

// Item is the currently playing track.
type Item struct {
	Name  string `json:"name"`
	Album *Album `json:"album,omitempty"`
}

// Album carries the artwork renditions, largest first.
type Album struct {
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Image is a single artwork rendition.
type Image struct {
	URL    *string `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// ArtworkURL walks item.album.images[index].url and returns "" when any link
// is missing.
func (p PlaybackPayload) ArtworkURL(index int) string {
	if p.Item == nil || p.Item.Album == nil {
		return ""
	}
	images := p.Item.Album.Images
	if index < 0 || index >= len(images) {
		return ""
	}
	if images[index].URL == nil {
		return ""
	}
	return *images[index].URL
}

// TrackAsset describes the single cached artwork slot. LocalPath holds the
// image fetched for FetchedForURL.
type TrackAsset struct {
	SourceURL     string `json:"source_url"`
	LocalPath     string `json:"local_path"`
	FetchedForURL string `json:"fetched_for_url"`
}
