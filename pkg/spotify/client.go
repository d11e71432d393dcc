package spotify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds client configuration.
type Config struct {
	ClientID     string        // Required: Spotify application client ID
	ClientSecret string        // Required: Spotify application client secret
	HTTPClient   *http.Client  // Optional: base HTTP client for token and API requests
	BaseURL      string        // Optional: Base URL for the Web API (used for testing)
	TokenURL     string        // Optional: Token endpoint (used for testing)
	Market       string        // Optional: ISO 3166-1 market for top tracks (defaults to US)
	Timeout      time.Duration // Optional: per-request timeout when HTTPClient is nil
	Logger       Logger        // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	market     string
	logger     Logger

	artists *ArtistService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"

	// DefaultTokenURL is the Spotify accounts token endpoint.
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	// DefaultMarket is used for market-scoped endpoints when none is configured.
	DefaultMarket = "US"

	// DefaultTimeout bounds a single request, token exchange included.
	DefaultTimeout = 15 * time.Second
)

// NewClient creates a new Spotify API client authenticated with the
// client credentials flow.
//
// No request is made here; the first API call fetches the access token.
// Returns an error if required configuration (ClientID, ClientSecret) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: ClientID is required", ErrInvalidConfig)
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: ClientSecret is required", ErrInvalidConfig)
	}

	base := cfg.HTTPClient
	if base == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		base = &http.Client{Timeout: timeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	market := cfg.Market
	if market == "" {
		market = DefaultMarket
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The oauth2 transport fetches and caches tokens with the base client.
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := creds.Client(ctx)
	httpClient.Timeout = base.Timeout

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		market:     market,
		logger:     cfg.Logger,
	}

	c.artists = &ArtistService{client: c}

	return c, nil
}

// Artists returns the artist service.
func (c *Client) Artists() *ArtistService {
	return c.artists
}

// Market returns the market used for market-scoped endpoints.
func (c *Client) Market() string {
	return c.market
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
