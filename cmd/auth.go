package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/bandsearch/internal/catalog"
	"github.com/jfmyers9/bandsearch/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Save and verify Spotify client credentials",
	Long: `Save Spotify client credentials to the config file.

This command will:
1. Prompt for your Spotify client ID and secret
2. Verify them with a test search
3. Save them to ~/.config/bandsearch/config.yaml

You can create an app and get credentials from:
https://developer.spotify.com/dashboard`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Spotify Authentication")
	fmt.Fprintln(out, "======================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "You can get client credentials from: https://developer.spotify.com/dashboard")
	fmt.Fprintln(out)

	// Check if we already have credentials
	if cfg.Spotify.HasCredentials() {
		fmt.Fprintf(out, "Found existing client credentials.\n")
		fmt.Fprintf(out, "Client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Fprint(out, "\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.Spotify.ClientID = ""
			cfg.Spotify.ClientSecret = ""
		}
	}

	if cfg.Spotify.ClientID == "" {
		cfg.Spotify.ClientID, err = promptLine(reader, out, "Enter your Spotify Client ID: ")
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
	}

	if cfg.Spotify.ClientSecret == "" {
		cfg.Spotify.ClientSecret, err = promptLine(reader, out, "Enter your Spotify Client Secret: ")
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
	}

	// Validate inputs
	if !cfg.Spotify.HasCredentials() {
		return fmt.Errorf("client ID and secret are required")
	}

	fmt.Fprintln(out, "\nVerifying credentials...")
	if _, err := catalog.Bootstrap(ctx, cfg.Spotify, zerolog.Nop()); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath := config.GetConfigDir()
	fmt.Fprintf(out, "\n✓ Credentials verified!\n")
	fmt.Fprintf(out, "✓ Saved to %s/config.yaml\n", configPath)
	fmt.Fprintln(out, "\nRun 'bandsearch' to start searching.")

	return nil
}

// promptLine prints label and returns the trimmed line the user typed.
func promptLine(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
