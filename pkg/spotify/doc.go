// Package spotify provides a client library for the Spotify Web API.
//
// # Overview
//
// This package covers the small, read-only slice of the Web API needed to
// look up artists: search, top tracks and related artists. It
// authenticates with the client credentials flow, so no user login is
// involved, and every method takes a context.Context.
//
// # Quick Start
//
//	import "github.com/jfmyers9/bandsearch/pkg/spotify"
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	artists, err := client.Artists().Search(ctx, "Bonobo", 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracks, err := client.Artists().TopTracks(ctx, artists[0].ID)
//
// # Authentication
//
// Access tokens are requested from the accounts service on first use and
// refreshed by golang.org/x/oauth2 when they expire. Bad credentials
// surface on the first call as an error for which IsAuthError is true:
//
//	if _, err := client.Artists().Search(ctx, "test", 1); err != nil {
//	    if spotify.IsAuthError(err) {
//	        // check client ID and secret
//	    }
//	}
//
// # Error Handling
//
// Non-200 responses are returned as *Error carrying the HTTP status and
// Spotify's message:
//
//	var apiErr *spotify.Error
//	if errors.As(err, &apiErr) && apiErr.Temporary() {
//	    // rate limited or server-side failure
//	}
//
// Requests are never retried by the client.
//
// # Configuration
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "id",
//	    ClientSecret: "secret",
//	    Market:       "GB",
//	    Timeout:      10 * time.Second,
//	    Logger:       myLogger, // Implements spotify.Logger
//	})
//
// BaseURL and TokenURL exist so tests can point the client at an
// httptest server.
//
// # Spotify Web API Documentation
//
// https://developer.spotify.com/documentation/web-api
package spotify
