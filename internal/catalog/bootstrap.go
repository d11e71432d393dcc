package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jfmyers9/bandsearch/internal/config"
	"github.com/jfmyers9/bandsearch/pkg/spotify"
	"github.com/rs/zerolog"
)

// FailureKind classifies why bootstrapping failed.
type FailureKind int

const (
	FailureConnectivity   FailureKind = iota // Network or service unreachable
	FailureAuthentication                    // Credentials missing or rejected
)

// String returns a human-readable representation of the FailureKind
func (k FailureKind) String() string {
	switch k {
	case FailureConnectivity:
		return "connectivity"
	case FailureAuthentication:
		return "authentication"
	default:
		return "unknown"
	}
}

// BootstrapError is returned by Bootstrap when a ready client could not be
// produced.
type BootstrapError struct {
	Kind FailureKind
	Err  error
}

func (e *BootstrapError) Error() string {
	return e.Err.Error()
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}

// ErrMissingCredentials is returned when no client id or secret is configured.
var ErrMissingCredentials = errors.New("spotify client id and secret are not set")

// smokeQuery is searched once at startup to prove the credentials work.
const smokeQuery = "test"

// Bootstrap builds a catalog client and verifies it with one inexpensive
// search. Any failure is returned as a *BootstrapError.
func Bootstrap(ctx context.Context, cfg config.SpotifyConfig, logger zerolog.Logger) (*Client, error) {
	logger = logger.With().Str("component", "catalog").Logger()

	if !cfg.HasCredentials() {
		return nil, &BootstrapError{Kind: FailureAuthentication, Err: ErrMissingCredentials}
	}

	client, err := New(cfg, logger)
	if err != nil {
		return nil, &BootstrapError{Kind: Classify(err), Err: err}
	}

	logger.Debug().Msg("Verifying Spotify credentials")

	if _, err := client.SearchArtists(ctx, smokeQuery, 1); err != nil {
		kind := Classify(err)
		logger.Debug().Err(err).Str("kind", kind.String()).Msg("Credential check failed")
		return nil, &BootstrapError{Kind: kind, Err: fmt.Errorf("credential check failed: %w", err)}
	}

	logger.Debug().Msg("Spotify credentials verified")
	return client, nil
}

// Classify maps an error from the Spotify client onto a FailureKind.
// Anything that is not a credential problem counts as connectivity.
func Classify(err error) FailureKind {
	if errors.Is(err, ErrMissingCredentials) || spotify.IsAuthError(err) {
		return FailureAuthentication
	}
	return FailureConnectivity
}
