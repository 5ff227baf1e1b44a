package game

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned by a Prompter when no more input will arrive.
var ErrEndOfInput = errors.New("end of input")

// Rejection reasons. Each is wrapped in a *RejectionError carrying the
// message shown to the operator before re-prompting.
var (
	ErrBlankName       = errors.New("blank player name")
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownValue    = errors.New("unknown dollar value")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrAnswerFormat    = errors.New("malformed answer")
)

// RejectionError describes recoverable bad input.
type RejectionError struct {
	Reason  error
	Message string
}

func reject(reason error, format string, args ...any) *RejectionError {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e *RejectionError) Error() string {
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return e.Reason
}
