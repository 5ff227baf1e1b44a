// Package console provides game.Prompter implementations for a terminal,
// piped input, and scripted play.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/lox/jeopardy/internal/game"
)

// Prompter is a game.Prompter that can be closed to unblock a pending
// prompt.
type Prompter interface {
	game.Prompter
	io.Closer
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a readline prompter when in and out are a terminal and a
// plain line reader otherwise.
func New(in *os.File, out *os.File, color bool) (Prompter, error) {
	if IsTerminal(in) && IsTerminal(out) {
		return NewReadline(in, out, color)
	}
	return NewLineReader(in, out), nil
}

// LineReader reads newline terminated lines. It is used when input is
// piped in rather than typed.
type LineReader struct {
	mu     sync.Mutex
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	closed bool
	done   chan struct{}
}

var _ Prompter = (*LineReader)(nil)

// NewLineReader creates a prompter reading lines from in and writing
// prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		done:   make(chan struct{}),
	}
}

type readResult struct {
	line string
	err  error
}

// PromptLine writes message and reads one line with its line ending
// removed. A final line without a newline is still returned. A pending
// read is abandoned when the reader is closed.
func (lr *LineReader) PromptLine(message string) (string, error) {
	if lr.isClosed() {
		return "", game.ErrEndOfInput
	}

	if _, err := io.WriteString(lr.out, message); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	// A read blocked on a pipe survives closing the file, so it runs on
	// its own goroutine. Once closed no further reads are started.
	resultChan := make(chan readResult, 1)
	go func() {
		line, err := lr.reader.ReadString('\n')
		resultChan <- readResult{line: line, err: err}
	}()

	select {
	case res := <-resultChan:
		return lr.lineOrEnd(res)
	case <-lr.done:
		return "", game.ErrEndOfInput
	}
}

func (lr *LineReader) lineOrEnd(res readResult) (string, error) {
	if res.err == nil {
		return trimLineEnding(res.line), nil
	}
	if res.line != "" && errors.Is(res.err, io.EOF) {
		return trimLineEnding(res.line), nil
	}
	if errors.Is(res.err, io.EOF) || lr.isClosed() {
		return "", game.ErrEndOfInput
	}
	return "", fmt.Errorf("reading input: %w", res.err)
}

// Close stops further prompts, releases a pending one, and closes the
// underlying reader when it is closable.
func (lr *LineReader) Close() error {
	lr.mu.Lock()
	if lr.closed {
		lr.mu.Unlock()
		return nil
	}
	lr.closed = true
	close(lr.done)
	lr.mu.Unlock()

	if c, ok := lr.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (lr *LineReader) isClosed() bool {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.closed
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
