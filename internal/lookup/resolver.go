// Package lookup resolves a query to a single artist and prints what the
// catalog knows about it.
package lookup

import (
	"context"
	"strings"

	"github.com/jfmyers9/bandsearch/internal/catalog"
)

// MaxCandidates is how many artists a search asks for.
const MaxCandidates = 3

// Outcome is the result of resolving one query.
type Outcome int

const (
	OutcomeNotFound  Outcome = iota // Search returned nothing
	OutcomeResolved                 // Top hit matches the query exactly
	OutcomeAmbiguous                // Results exist but the top hit differs
)

// String returns a human-readable representation of the Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not-found"
	case OutcomeResolved:
		return "resolved"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Resolution describes how a query was resolved.
type Resolution struct {
	Outcome    Outcome
	Artist     catalog.Artist   // Set when Outcome is OutcomeResolved
	Candidates []catalog.Artist // Everything the search returned
}

// Resolve searches for query and decides between not-found, resolved and
// ambiguous. Only the first candidate is compared, by case-insensitive
// equality; there is no fuzzy matching.
func Resolve(ctx context.Context, c catalog.Catalog, query string) (Resolution, error) {
	candidates, err := c.SearchArtists(ctx, query, MaxCandidates)
	if err != nil {
		return Resolution{}, err
	}

	// Guard against a catalog that ignores the limit
	if len(candidates) > MaxCandidates {
		candidates = candidates[:MaxCandidates]
	}

	if len(candidates) == 0 {
		return Resolution{Outcome: OutcomeNotFound}, nil
	}

	if strings.ToLower(candidates[0].Name) == strings.ToLower(query) {
		return Resolution{
			Outcome:    OutcomeResolved,
			Artist:     candidates[0],
			Candidates: candidates,
		}, nil
	}

	return Resolution{Outcome: OutcomeAmbiguous, Candidates: candidates}, nil
}
