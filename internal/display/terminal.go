package display

import (
	"fmt"
	"io"

	"github.com/lox/jeopardy/internal/game"
)

// Terminal writes displayed text to an io.Writer, one block per call.
type Terminal struct {
	out io.Writer
}

var _ game.Display = (*Terminal)(nil)

// NewTerminal creates a display writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Show writes text followed by a newline. Write errors are dropped; there
// is nowhere left to report them.
func (t *Terminal) Show(text string) {
	_, _ = fmt.Fprintln(t.out, text)
}
