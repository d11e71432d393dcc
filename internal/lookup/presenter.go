package lookup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/bandsearch/internal/catalog"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	// MaxTopTracks is how many top tracks are printed.
	MaxTopTracks = 5

	// MaxRelated is how many related artists are printed.
	MaxRelated = 3
)

// Config holds presentation settings
type Config struct {
	// Names wider than this many display columns are truncated with "..."
	// (0 = no limit)
	MaxNameWidth int
}

// Service resolves queries against a catalog and prints the results.
type Service struct {
	catalog catalog.Catalog
	out     io.Writer
	config  Config
	logger  zerolog.Logger
}

// NewService creates a lookup Service
func NewService(c catalog.Catalog, out io.Writer, cfg Config, logger zerolog.Logger) *Service {
	return &Service{
		catalog: c,
		out:     out,
		config:  cfg,
		logger:  logger.With().Str("component", "lookup").Logger(),
	}
}

// Lookup resolves query and prints one of: a not-found notice, a list of
// suggestions, or the artist's top tracks and related artists. Follow-up
// calls are only made for a resolved artist.
func (s *Service) Lookup(ctx context.Context, query string) (Resolution, error) {
	res, err := Resolve(ctx, s.catalog, query)
	if err != nil {
		return Resolution{}, err
	}

	s.logger.Debug().
		Str("query", query).
		Str("outcome", res.Outcome.String()).
		Int("candidates", len(res.Candidates)).
		Msg("Resolved query")

	switch res.Outcome {
	case OutcomeNotFound:
		fmt.Fprintln(s.out, "Hmm.... Spotify didn't return any results. Did you type the name correctly?")
		fmt.Fprintln(s.out)

	case OutcomeAmbiguous:
		fmt.Fprintln(s.out, "Spotify had some trouble finding the exact name. Maybe you meant:")
		fmt.Fprintln(s.out)
		for _, c := range res.Candidates {
			fmt.Fprintln(s.out, s.fit(c.Name))
		}
		fmt.Fprintln(s.out)

	case OutcomeResolved:
		fmt.Fprintf(s.out, "%s - Found!\n\n", query)
		if err := s.present(ctx, query, res.Artist); err != nil {
			return res, err
		}
	}

	return res, nil
}

// present prints the top tracks and related artists for a resolved artist.
func (s *Service) present(ctx context.Context, query string, artist catalog.Artist) error {
	tracks, err := s.catalog.TopTracks(ctx, artist.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Top 5 Tracks:")
	for _, line := range FormatTopTracks(tracks, s.fit) {
		fmt.Fprintln(s.out, line)
	}

	related, err := s.catalog.RelatedArtists(ctx, artist.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nIf you like %s, check out these related artists:\n", query)
	fmt.Fprintln(s.out, FormatRelated(related, s.fit))
	fmt.Fprintln(s.out)

	return nil
}

// FormatTopTracks numbers up to MaxTopTracks names as "N.) name" in the
// order given. fit may be nil.
func FormatTopTracks(tracks []string, fit func(string) string) []string {
	if len(tracks) == 0 {
		return []string{"No tracks found."}
	}

	if len(tracks) > MaxTopTracks {
		tracks = tracks[:MaxTopTracks]
	}

	lines := make([]string, len(tracks))
	for i, name := range tracks {
		if fit != nil {
			name = fit(name)
		}
		lines[i] = fmt.Sprintf("%d.) %s", i+1, name)
	}
	return lines
}

// FormatRelated joins up to MaxRelated names with ", " on a single line.
// With three names this is "a, b, c"; fewer names are joined the same way.
// fit may be nil.
func FormatRelated(names []string, fit func(string) string) string {
	if len(names) == 0 {
		return "No related artists found."
	}

	if len(names) > MaxRelated {
		names = names[:MaxRelated]
	}

	fitted := make([]string, len(names))
	for i, name := range names {
		if fit != nil {
			name = fit(name)
		}
		fitted[i] = name
	}
	return strings.Join(fitted, ", ")
}

func (s *Service) fit(name string) string {
	return truncateToWidth(name, s.config.MaxNameWidth)
}

// truncateToWidth shortens text to at most width display columns, ending
// in "..." when cut. Width is measured in display columns, so CJK and
// emoji count double. If width <= 0, returns text unchanged.
func truncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	ellipsis := "..."
	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	return runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
}
