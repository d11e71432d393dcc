package catalog

import (
	"context"
	"fmt"

	"github.com/jfmyers9/bandsearch/internal/config"
	"github.com/jfmyers9/bandsearch/pkg/spotify"
	"github.com/rs/zerolog"
)

// Artist is a catalog entry: a display name and the opaque ID used for
// follow-up lookups.
type Artist struct {
	ID   string
	Name string
}

// Catalog is the set of remote lookups the search flow needs.
type Catalog interface {
	// SearchArtists returns up to limit candidates for name, best match first.
	SearchArtists(ctx context.Context, name string, limit int) ([]Artist, error)

	// TopTracks returns the artist's track names in the service's order.
	TopTracks(ctx context.Context, artistID string) ([]string, error)

	// RelatedArtists returns names of similar artists in the service's order.
	RelatedArtists(ctx context.Context, artistID string) ([]string, error)
}

// Client wraps the Spotify API client
type Client struct {
	client *spotify.Client
}

var _ Catalog = (*Client)(nil)

// New creates a Spotify-backed catalog client. It makes no network calls;
// use Bootstrap to also verify the credentials.
func New(cfg config.SpotifyConfig, logger zerolog.Logger) (*Client, error) {
	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		BaseURL:      cfg.BaseURL,
		TokenURL:     cfg.TokenURL,
		Market:       cfg.Market,
		Timeout:      cfg.Timeout,
		Logger:       debugLogger{logger: logger.With().Str("component", "spotify").Logger()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spotify client: %w", err)
	}

	return &Client{client: client}, nil
}

// SearchArtists searches the catalog for artists by name
func (c *Client) SearchArtists(ctx context.Context, name string, limit int) ([]Artist, error) {
	found, err := c.client.Artists().Search(ctx, name, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	artists := make([]Artist, len(found))
	for i, a := range found {
		artists[i] = Artist{ID: a.ID, Name: a.Name}
	}
	return artists, nil
}

// TopTracks returns the names of an artist's top tracks
func (c *Client) TopTracks(ctx context.Context, artistID string) ([]string, error) {
	tracks, err := c.client.Artists().TopTracks(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get top tracks: %w", err)
	}

	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.Name
	}
	return names, nil
}

// RelatedArtists returns the names of artists related to an artist
func (c *Client) RelatedArtists(ctx context.Context, artistID string) ([]string, error) {
	related, err := c.client.Artists().RelatedArtists(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get related artists: %w", err)
	}

	names := make([]string, len(related))
	for i, a := range related {
		names[i] = a.Name
	}
	return names, nil
}

// debugLogger routes SDK debug output into zerolog.
type debugLogger struct {
	logger zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
