// Package input turns raw console lines into either a bang command or an
// artist query.
package input

import (
	"regexp"
	"strings"
)

// MaxQueryLength is the longest accepted query, in characters.
const MaxQueryLength = 50

// Kind identifies what a line of user input turned out to be.
type Kind int

const (
	KindEmpty    Kind = iota // Nothing typed, not even spaces; re-prompt silently
	KindCommand              // Starts with '!'
	KindQuery                // A valid artist name
	KindRejected             // Failed validation; Reason says why
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCommand:
		return "command"
	case KindQuery:
		return "query"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Input is the result of validating one line.
type Input struct {
	Kind   Kind
	Text   string // The line without its terminator
	Reason string // Set when Kind is KindRejected
}

// Rejection messages shown to the user.
const (
	ReasonNotASCII   = "Please only use alpha-numeric characters found in the English language."
	ReasonCharacters = "Please only use alpha-numeric characters for searching."
	ReasonTooLong    = "Name too long - please keep query equal or under 50 characters."
)

// Whitespace here is the wider set: \v and the \x1c-\x1f separators count too.
var allowed = regexp.MustCompile(`^[a-zA-Z0-9_\t\n\v\f\r \x1c-\x1f.!,]*$`)

// Parse validates a single line. Checks run in order and the first
// failure wins: empty, bang command, ASCII, character whitelist, length.
func Parse(line string) Input {
	text := strings.TrimRight(line, "\r\n")

	if text == "" {
		return Input{Kind: KindEmpty}
	}

	if strings.HasPrefix(text, "!") {
		return Input{Kind: KindCommand, Text: text}
	}

	if !isASCII(text) {
		return Input{Kind: KindRejected, Text: text, Reason: ReasonNotASCII}
	}

	if !allowed.MatchString(text) {
		return Input{Kind: KindRejected, Text: text, Reason: ReasonCharacters}
	}

	// ASCII only, so bytes and characters agree
	if len(text) > MaxQueryLength {
		return Input{Kind: KindRejected, Text: text, Reason: ReasonTooLong}
	}

	return Input{Kind: KindQuery, Text: text}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
