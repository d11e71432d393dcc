package spotify

import (
	"context"
	"net/url"
	"strconv"
)

const (
	// MaxSearchLimit is the largest page size the search endpoint accepts.
	MaxSearchLimit = 50
)

// ArtistService provides artist lookups against the Spotify Web API.
type ArtistService struct {
	client *Client
}

// Search returns up to limit artists matching name, in the order Spotify
// ranks them. The limit is clamped to 1..MaxSearchLimit.
//
// Example:
//
//	artists, err := client.Artists().Search(ctx, "Lizzo", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range artists {
//	    fmt.Println(a.Name, a.ID)
//	}
func (s *ArtistService) Search(ctx context.Context, name string, limit int) ([]Artist, error) {
	if name == "" {
		return nil, ErrEmptyQuery
	}

	if limit < 1 {
		limit = 1
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	query := url.Values{}
	query.Set("q", name)
	query.Set("type", "artist")
	query.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := s.client.get(ctx, "/search", query, &resp); err != nil {
		return nil, err
	}

	return resp.Artists.Items, nil
}

// TopTracks returns an artist's most popular tracks in the client's market.
// Spotify returns at most ten.
func (s *ArtistService) TopTracks(ctx context.Context, artistID string) ([]Track, error) {
	if artistID == "" {
		return nil, ErrEmptyID
	}

	query := url.Values{}
	query.Set("market", s.client.market)

	var resp topTracksResponse
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(artistID)+"/top-tracks", query, &resp); err != nil {
		return nil, err
	}

	return resp.Tracks, nil
}

// RelatedArtists returns artists similar to the given artist, based on
// listener history.
func (s *ArtistService) RelatedArtists(ctx context.Context, artistID string) ([]Artist, error) {
	if artistID == "" {
		return nil, ErrEmptyID
	}

	var resp relatedArtistsResponse
	if err := s.client.get(ctx, "/artists/"+url.PathEscape(artistID)+"/related-artists", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Artists, nil
}
