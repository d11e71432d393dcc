package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultPrompt asks for the next artist name.
const DefaultPrompt = ">>> Please input a name of an artist/band: "

// Prompter reads lines until one is a command or a valid query.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
	done   bool
}

// NewPrompter creates a Prompter reading from in and writing prompts and
// rejection messages to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		prompt: DefaultPrompt,
	}
}

// Next blocks until the user enters a bang command or a valid query.
// Empty lines re-prompt silently; rejected lines print their reason first.
// Lines of any length are accepted from the reader. Returns io.EOF once
// input is exhausted.
func (p *Prompter) Next() (Input, error) {
	for {
		fmt.Fprintln(p.out, p.prompt)

		line, err := p.readLine()
		if err != nil {
			return Input{}, err
		}

		in := Parse(line)
		switch in.Kind {
		case KindEmpty:
			continue
		case KindRejected:
			fmt.Fprintln(p.out, in.Reason)
			continue
		default:
			return in, nil
		}
	}
}

// readLine returns the next line including its terminator. A final line
// without a newline is returned before io.EOF.
func (p *Prompter) readLine() (string, error) {
	if p.done {
		return "", io.EOF
	}

	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		p.done = true
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}
