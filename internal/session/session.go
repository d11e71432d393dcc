package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jfmyers9/bandsearch/internal/catalog"
	"github.com/jfmyers9/bandsearch/internal/command"
	"github.com/jfmyers9/bandsearch/internal/input"
	"github.com/jfmyers9/bandsearch/internal/lookup"
	"github.com/rs/zerolog"
)

// Config holds session configuration
type Config struct {
	Version      string // Shown by !about
	MaxNameWidth int    // Display width limit for names (0 = unlimited)
}

// Session is the interactive loop: read a line, run a command or look up
// an artist, repeat until !quit or end of input.
type Session struct {
	config     Config
	out        io.Writer
	prompter   *input.Prompter
	dispatcher *command.Dispatcher
	lookup     *lookup.Service
	logger     zerolog.Logger
}

// New creates a Session reading from in and writing to out
func New(cfg Config, c catalog.Catalog, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		config:     cfg,
		out:        out,
		prompter:   input.NewPrompter(in, out),
		dispatcher: command.NewDispatcher(out, cfg.Version),
		lookup:     lookup.NewService(c, out, lookup.Config{MaxNameWidth: cfg.MaxNameWidth}, logger),
		logger:     logger.With().Str("component", "session").Logger(),
	}
}

// Run prints the greeting and blocks until the user quits or input ends.
// Lookup failures are reported and the loop continues; only a read error
// is returned.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug().Msg("Starting session")
	s.greet()

	for {
		in, err := s.prompter.Next()
		if errors.Is(err, io.EOF) {
			s.logger.Debug().Msg("Input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}

		switch in.Kind {
		case input.KindCommand:
			cmd := command.Parse(in.Text)
			s.logger.Debug().Str("command", cmd.String()).Msg("Running command")
			if s.dispatcher.Dispatch(cmd).Quit {
				s.logger.Debug().Msg("Quit requested, ending session")
				return nil
			}

		case input.KindQuery:
			s.search(ctx, in.Text)
			fmt.Fprintln(s.out, ">>> Type another artist, or type !quit to exit the program.")
		}
	}
}

// search runs one lookup. Failures end this query only.
func (s *Session) search(ctx context.Context, query string) {
	fmt.Fprintf(s.out, "\n>>> ... searching ....\n\n")

	if _, err := s.lookup.Lookup(ctx, query); err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("Lookup failed")
		fmt.Fprintf(s.out, "Something went wrong talking to Spotify: %v\n\n", err)
	}
}

func (s *Session) greet() {
	fmt.Fprintln(s.out, ">>> Welcome to bandsearch, a command line window into Spotify!")
	fmt.Fprintln(s.out, ">>> Type !help for help or !quit to quit")
	fmt.Fprintln(s.out, ">>> Type an artist's name to get their top 5 tracks and similar artists")
	fmt.Fprintln(s.out)
}
