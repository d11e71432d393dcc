package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Log level for diagnostics on stderr (debug, info, warn, error)
	// Default: "error"
	LogLevel string

	// Log file path; empty means stderr
	LogFile string

	// Maximum display width for track and artist names (0 = unlimited)
	MaxNameWidth int

	// Spotify API credentials and request settings
	Spotify SpotifyConfig
}

// SpotifyConfig holds Spotify specific configuration
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	Market       string
	Timeout      time.Duration

	// Endpoint overrides, only set in tests
	BaseURL  string
	TokenURL string
}

// HasCredentials reports whether both client id and secret are set
func (s SpotifyConfig) HasCredentials() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	// A .env file in the working directory is optional; variables already
	// present in the environment win.
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("log_level", "error")
	v.SetDefault("log_file", "")
	v.SetDefault("max_name_width", 0)
	v.SetDefault("spotify.market", "US")
	v.SetDefault("spotify.timeout", "15s")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Read from environment variables
	v.SetEnvPrefix("BANDSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials also come from the variable names other Spotify tools use
	_ = v.BindEnv("spotify.client_id", "BANDSEARCH_SPOTIFY_CLIENT_ID", "SPOTIPY_CLIENT_ID", "SPOTIFY_CLIENT_ID")
	_ = v.BindEnv("spotify.client_secret", "BANDSEARCH_SPOTIFY_CLIENT_SECRET", "SPOTIPY_CLIENT_SECRET", "SPOTIFY_CLIENT_SECRET")

	// Map config to struct
	cfg := &Config{
		LogLevel:     v.GetString("log_level"),
		LogFile:      v.GetString("log_file"),
		MaxNameWidth: v.GetInt("max_name_width"),
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			ClientSecret: v.GetString("spotify.client_secret"),
			Market:       v.GetString("spotify.market"),
			Timeout:      v.GetDuration("spotify.timeout"),
			BaseURL:      v.GetString("spotify.base_url"),
			TokenURL:     v.GetString("spotify.token_url"),
		},
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "bandsearch")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("log_level", c.LogLevel)
	v.Set("log_file", c.LogFile)
	v.Set("max_name_width", c.MaxNameWidth)
	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.client_secret", c.Spotify.ClientSecret)
	v.Set("spotify.market", c.Spotify.Market)
	v.Set("spotify.timeout", c.Spotify.Timeout.String())

	// The file holds the client secret
	if err := v.WriteConfigAs(configFile); err != nil {
		return err
	}
	return os.Chmod(configFile, 0600)
}
