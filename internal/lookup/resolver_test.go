package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/jfmyers9/bandsearch/internal/catalog"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		results        []catalog.Artist
		wantOutcome    Outcome
		wantArtist     catalog.Artist
		wantCandidates int
	}{
		{
			name:        "no results",
			query:       "asdkjasd",
			wantOutcome: OutcomeNotFound,
		},
		{
			name:           "exact match",
			query:          "Lizzo",
			results:        []catalog.Artist{{ID: "liz", Name: "Lizzo"}},
			wantOutcome:    OutcomeResolved,
			wantArtist:     catalog.Artist{ID: "liz", Name: "Lizzo"},
			wantCandidates: 1,
		},
		{
			name:           "case-insensitive match",
			query:          "mac miller",
			results:        []catalog.Artist{{ID: "mac", Name: "Mac Miller"}, {ID: "x", Name: "Mac"}},
			wantOutcome:    OutcomeResolved,
			wantArtist:     catalog.Artist{ID: "mac", Name: "Mac Miller"},
			wantCandidates: 2,
		},
		{
			name:           "substring is not a match",
			query:          "Bono",
			results:        []catalog.Artist{{ID: "b", Name: "Bonobo"}, {ID: "u2", Name: "U2"}, {ID: "bono", Name: "Bono"}},
			wantOutcome:    OutcomeAmbiguous,
			wantCandidates: 3,
		},
		{
			name:           "only top hit is compared",
			query:          "Post Malone",
			results:        []catalog.Artist{{ID: "p", Name: "Posty"}, {ID: "pm", Name: "Post Malone"}},
			wantOutcome:    OutcomeAmbiguous,
			wantCandidates: 2,
		},
		{
			name:           "single non-matching result",
			query:          "Bonbo",
			results:        []catalog.Artist{{ID: "b", Name: "Bonobo"}},
			wantOutcome:    OutcomeAmbiguous,
			wantCandidates: 1,
		},
		{
			name:  "oversized result set is capped",
			query: "The",
			results: []catalog.Artist{
				{ID: "1", Name: "The Beatles"}, {ID: "2", Name: "The Who"},
				{ID: "3", Name: "The Doors"}, {ID: "4", Name: "The Kinks"},
			},
			wantOutcome:    OutcomeAmbiguous,
			wantCandidates: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalog{results: map[string][]catalog.Artist{tt.query: tt.results}}

			res, err := Resolve(context.Background(), fake, tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if res.Outcome != tt.wantOutcome {
				t.Errorf("outcome = %s, want %s", res.Outcome, tt.wantOutcome)
			}
			if res.Artist != tt.wantArtist {
				t.Errorf("artist = %+v, want %+v", res.Artist, tt.wantArtist)
			}
			if len(res.Candidates) != tt.wantCandidates {
				t.Errorf("candidates = %d, want %d", len(res.Candidates), tt.wantCandidates)
			}
			if len(fake.limits) != 1 || fake.limits[0] != MaxCandidates {
				t.Errorf("expected one search with limit %d, got %v", MaxCandidates, fake.limits)
			}
			if fake.followUps() != 0 {
				t.Errorf("Resolve must not make follow-up calls, got %d", fake.followUps())
			}
		})
	}
}

func TestResolve_SearchError(t *testing.T) {
	wantErr := errors.New("connection reset")
	fake := &fakeCatalog{searchErr: wantErr}

	_, err := Resolve(context.Background(), fake, "Lizzo")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestOutcome_String(t *testing.T) {
	outcomes := map[Outcome]string{
		OutcomeNotFound:  "not-found",
		OutcomeResolved:  "resolved",
		OutcomeAmbiguous: "ambiguous",
		Outcome(7):       "unknown",
	}
	for o, want := range outcomes {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
