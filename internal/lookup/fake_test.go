package lookup

import (
	"context"

	"github.com/jfmyers9/bandsearch/internal/catalog"
)

// fakeCatalog is an in-memory catalog that records calls.
type fakeCatalog struct {
	results map[string][]catalog.Artist
	tracks  map[string][]string
	related map[string][]string

	searchErr  error
	tracksErr  error
	relatedErr error

	searches     []string
	limits       []int
	trackCalls   []string
	relatedCalls []string
}

func (f *fakeCatalog) SearchArtists(ctx context.Context, name string, limit int) ([]catalog.Artist, error) {
	f.searches = append(f.searches, name)
	f.limits = append(f.limits, limit)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[name], nil
}

func (f *fakeCatalog) TopTracks(ctx context.Context, artistID string) ([]string, error) {
	f.trackCalls = append(f.trackCalls, artistID)
	if f.tracksErr != nil {
		return nil, f.tracksErr
	}
	return f.tracks[artistID], nil
}

func (f *fakeCatalog) RelatedArtists(ctx context.Context, artistID string) ([]string, error) {
	f.relatedCalls = append(f.relatedCalls, artistID)
	if f.relatedErr != nil {
		return nil, f.relatedErr
	}
	return f.related[artistID], nil
}

func (f *fakeCatalog) followUps() int {
	return len(f.trackCalls) + len(f.relatedCalls)
}
