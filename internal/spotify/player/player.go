package player

import (
	"context"
	"errors"
	"net"

	"github.com/tessro/coverclock/internal/core"
	"github.com/tessro/coverclock/internal/spotify/client"
)

// Player answers currently-playing queries for the display loop.
type Player struct {
	client *client.Client
	market string
}

// New creates a new Spotify player.
func New(c *client.Client) *Player {
	return &Player{client: c}
}

// SetMarket sets the market passed with each query.
func (p *Player) SetMarket(market string) {
	p.market = market
}

// Market returns the market passed with each query.
func (p *Player) Market() string {
	return p.market
}

// CurrentlyPlaying implements core.PlaybackQuery.
func (p *Player) CurrentlyPlaying(ctx context.Context) (core.PlaybackResponse, error) {
	status, doc, err := p.client.CurrentlyPlaying(ctx, p.market)
	if err != nil {
		if isTimeout(err) && ctx.Err() == nil {
			return core.PlaybackResponse{
				Payload: core.PlaybackPayload{Message: core.TimeoutMessage},
			}, nil
		}
		return core.PlaybackResponse{}, err
	}

	return core.PlaybackResponse{
		StatusCode: status,
		Payload:    convertPayload(doc),
	}, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// convertPayload converts a Spotify document to the core payload.
func convertPayload(doc *client.CurrentlyPlaying) core.PlaybackPayload {
	if doc == nil {
		return core.PlaybackPayload{}
	}

	payload := core.PlaybackPayload{
		IsPlaying: doc.IsPlaying,
		Message:   doc.Message,
	}
	if doc.Item != nil {
		payload.Item = convertTrack(doc.Item)
	}
	return payload
}

// convertTrack converts a Spotify track to a core item.
func convertTrack(t *client.Track) *core.Item {
	item := &core.Item{Name: t.Name}
	if t.Album == nil {
		return item
	}

	images := make([]core.Image, len(t.Album.Images))
	for i, img := range t.Album.Images {
		images[i] = core.Image{URL: img.URL}
		if img.Width != nil {
			images[i].Width = *img.Width
		}
		if img.Height != nil {
			images[i].Height = *img.Height
		}
	}
	item.Album = &core.Album{Name: t.Album.Name, Images: images}
	return item
}

// Ensure Player implements core.PlaybackQuery
var _ core.PlaybackQuery = (*Player)(nil)
