package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_Next(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    Kind
		wantText    string
		wantPrompts int
		wantReasons []string
	}{
		{
			name:        "first line valid",
			input:       "Lizzo\n",
			wantKind:    KindQuery,
			wantText:    "Lizzo",
			wantPrompts: 1,
		},
		{
			name:        "empty lines re-prompt silently",
			input:       "\n\n\nBonobo\n",
			wantKind:    KindQuery,
			wantText:    "Bonobo",
			wantPrompts: 4,
		},
		{
			name:        "rejections print reasons",
			input:       "héllo\nAC/DC\n" + strings.Repeat("x", 51) + "\nMac Miller\n",
			wantKind:    KindQuery,
			wantText:    "Mac Miller",
			wantPrompts: 4,
			wantReasons: []string{ReasonNotASCII, ReasonCharacters, ReasonTooLong},
		},
		{
			name:        "line longer than a scanner buffer",
			input:       strings.Repeat("a", 70000) + "\nLizzo\n",
			wantKind:    KindQuery,
			wantText:    "Lizzo",
			wantPrompts: 2,
			wantReasons: []string{ReasonTooLong},
		},
		{
			name:        "command returned to caller",
			input:       "\n!favs\n",
			wantKind:    KindCommand,
			wantText:    "!favs",
			wantPrompts: 2,
		},
		{
			name:        "last line without newline",
			input:       "Post Malone",
			wantKind:    KindQuery,
			wantText:    "Post Malone",
			wantPrompts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != tt.wantKind || got.Text != tt.wantText {
				t.Errorf("Next() = %s %q, want %s %q", got.Kind, got.Text, tt.wantKind, tt.wantText)
			}

			output := out.String()
			if n := strings.Count(output, DefaultPrompt); n != tt.wantPrompts {
				t.Errorf("expected %d prompts, got %d", tt.wantPrompts, n)
			}
			for _, reason := range tt.wantReasons {
				if !strings.Contains(output, reason) {
					t.Errorf("expected output to contain %q, got %q", reason, output)
				}
			}

			// Only prompts and reasons are ever printed.
			rest := strings.ReplaceAll(output, DefaultPrompt+"\n", "")
			for _, reason := range tt.wantReasons {
				rest = strings.Replace(rest, reason+"\n", "", 1)
			}
			if rest != "" {
				t.Errorf("unexpected extra output: %q", rest)
			}
		})
	}
}

func TestPrompter_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nhéllo\n"), &out)

	_, err := p.Next()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !strings.Contains(out.String(), ReasonNotASCII) {
		t.Errorf("expected rejection before EOF, got %q", out.String())
	}
}

// After the final unterminated line, every later call reports io.EOF
// without reading again.
func TestPrompter_EOFIsSticky(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Lizzo"), &out)

	if got, err := p.Next(); err != nil || got.Text != "Lizzo" {
		t.Fatalf("first Next() = %+v, %v", got, err)
	}
	for i := 0; i < 2; i++ {
		if _, err := p.Next(); !errors.Is(err, io.EOF) {
			t.Fatalf("Next() after EOF = %v, want io.EOF", err)
		}
	}
}

func TestPrompter_Sequence(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("!help\nLizzo\n"), &out)

	first, err := p.Next()
	if err != nil || first.Kind != KindCommand {
		t.Fatalf("first Next() = %+v, %v", first, err)
	}
	second, err := p.Next()
	if err != nil || second.Kind != KindQuery || second.Text != "Lizzo" {
		t.Fatalf("second Next() = %+v, %v", second, err)
	}
	if _, err := p.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("third Next() error = %v, want io.EOF", err)
	}
}
