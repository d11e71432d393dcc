// Package command implements the bang commands available at the prompt.
package command

import (
	"fmt"
	"io"
)

// Command is one of the recognized bang commands.
type Command int

const (
	Unknown   Command = iota // Anything not listed below
	Help                     // !help
	About                    // !about
	Favorites                // !favs
	Quit                     // !quit
)

var names = map[string]Command{
	"!help":  Help,
	"!about": About,
	"!favs":  Favorites,
	"!quit":  Quit,
}

// Parse maps text to a Command. Matching is exact and case-sensitive.
func Parse(text string) Command {
	if c, ok := names[text]; ok {
		return c
	}
	return Unknown
}

// String returns the command as typed at the prompt
func (c Command) String() string {
	switch c {
	case Help:
		return "!help"
	case About:
		return "!about"
	case Favorites:
		return "!favs"
	case Quit:
		return "!quit"
	default:
		return "unknown"
	}
}

// Result reports what the caller should do after a command ran.
type Result struct {
	Quit bool
}

// Dispatcher prints the output of bang commands.
type Dispatcher struct {
	out     io.Writer
	version string
}

// NewDispatcher creates a Dispatcher writing to out. version appears in
// the !about text.
func NewDispatcher(out io.Writer, version string) *Dispatcher {
	return &Dispatcher{out: out, version: version}
}

// Dispatch runs a command. Only Quit sets Result.Quit; the dispatcher
// never exits the process itself.
func (d *Dispatcher) Dispatch(c Command) Result {
	fmt.Fprintln(d.out)

	switch c {
	case Help:
		fmt.Fprintln(d.out, "Band Search Usage:")
		fmt.Fprintln(d.out, "Type the name of a band, singer, or songwriter you wish to know about.")
		fmt.Fprintln(d.out, "If the artist is on Spotify, we'll pull back the top 5 tracks,")
		fmt.Fprintln(d.out, "as well as some similar artists!")
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, "Additional commands - !about, !favs, !quit")
		fmt.Fprintln(d.out)

	case About:
		fmt.Fprintf(d.out, "bandsearch %s\n", d.version)
		fmt.Fprintln(d.out, "A small command line companion for the Spotify catalog.")
		fmt.Fprintln(d.out, "Made with love and a good amount of coffee.")
		fmt.Fprintln(d.out)

	case Favorites:
		fmt.Fprintln(d.out, "Thanks for asking! Our favorite artists at the moment are:")
		fmt.Fprintln(d.out, "Post Malone, Lizzo, Mac Miller, and Bonobo to name a few.")
		fmt.Fprintln(d.out)

	case Quit:
		fmt.Fprintln(d.out, ">>> Thanks for using bandsearch!")
		return Result{Quit: true}

	default:
		fmt.Fprintln(d.out, "Hmm, not sure what you mean. Try one of these commands:")
		fmt.Fprintln(d.out, "!about, !favs, !help, !quit")
		fmt.Fprintln(d.out)
	}

	return Result{}
}
