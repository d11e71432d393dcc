/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jfmyers9/bandsearch/internal/catalog"
	"github.com/jfmyers9/bandsearch/internal/config"
	"github.com/jfmyers9/bandsearch/internal/session"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Exit codes
const (
	exitOK           = 0
	exitConnectivity = 1
	exitAuth         = 2
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bandsearch",
	Short: "Look up artists on Spotify from the command line",
	Long: `bandsearch is an interactive Spotify artist lookup.

Type an artist or band name at the prompt to see their top 5 tracks
and a few related artists. Type !help at the prompt for commands.

Spotify client credentials are read from the environment
(SPOTIPY_CLIENT_ID / SPOTIPY_CLIENT_SECRET, or SPOTIFY_CLIENT_ID /
SPOTIFY_CLIENT_SECRET), a .env file, or ~/.config/bandsearch/config.yaml.
Run 'bandsearch auth' to save them.

Exit codes:
  0 - Quit by the user or end of input
  1 - Could not reach Spotify
  2 - Spotify rejected the client credentials`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	os.Exit(exitCode(os.Stdout, os.Stderr, err))
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := setupLogger(cfg.LogFile, cfg.LogLevel)

	logger.Debug().
		Str("version", version).
		Msg("Starting bandsearch")

	client, err := catalog.Bootstrap(ctx, cfg.Spotify, logger)
	if err != nil {
		return err
	}

	s := session.New(session.Config{
		Version:      version,
		MaxNameWidth: cfg.MaxNameWidth,
	}, client, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	return s.Run(ctx)
}

// exitCode prints the diagnostic for err and returns the process exit code.
// Bootstrap diagnostics go to stdout with the rest of the conversation.
func exitCode(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var bootErr *catalog.BootstrapError
	if errors.As(err, &bootErr) {
		switch bootErr.Kind {
		case catalog.FailureAuthentication:
			fmt.Fprintf(stdout, "%v, Double check your Client ID and Secret - they may not be correct!\n", bootErr.Err)
			return exitAuth
		default:
			fmt.Fprintf(stdout, "%v, is your internet working??\n", bootErr.Err)
			return exitConnectivity
		}
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitConnectivity
}
