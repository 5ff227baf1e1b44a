package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"github.com/lox/jeopardy/internal/game"
)

// Readline prompts on an interactive terminal with line editing and
// in-memory history.
type Readline struct {
	rl    *readline.Instance
	style lipgloss.Style
}

var _ Prompter = (*Readline)(nil)

// NewReadline creates a readline prompter on the given terminal streams.
// Prompts are plain when color is false.
func NewReadline(in io.ReadCloser, out io.Writer, color bool) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("starting readline: %w", err)
	}
	return &Readline{rl: rl, style: promptStyle(out, color)}, nil
}

func promptStyle(out io.Writer, color bool) lipgloss.Style {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
}

// PromptLine shows message as the prompt and reads one line. Ctrl-C and
// Ctrl-D both end input.
func (r *Readline) PromptLine(message string) (string, error) {
	r.rl.SetPrompt(r.style.Render(message))

	line, err := r.rl.Readline()
	if err != nil {
		return "", readlineErr(err)
	}
	return line, nil
}

func readlineErr(err error) error {
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return game.ErrEndOfInput
	}
	return fmt.Errorf("reading input: %w", err)
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}
