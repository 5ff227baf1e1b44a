package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/lox/jeopardy/internal/game"
)

// Script answers prompts from a fixed list of lines, echoing each prompt and
// answer to out as a transcript. It ends input once the lines run out.
type Script struct {
	mu     sync.Mutex
	lines  []string
	out    io.Writer
	closed bool
}

var _ Prompter = (*Script)(nil)

// NewScript creates a prompter that replays lines in order.
func NewScript(out io.Writer, lines ...string) *Script {
	return &Script{lines: lines, out: out}
}

// PromptLine returns the next scripted line.
func (s *Script) PromptLine(message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.lines) == 0 {
		return "", game.ErrEndOfInput
	}

	line := s.lines[0]
	s.lines = s.lines[1:]
	if _, err := fmt.Fprintln(s.out, message+line); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	return line, nil
}

// Remaining returns how many lines have not been used.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Close drops any remaining lines.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
