package game

import "github.com/lox/jeopardy/internal/bank"

// Prompter requests one line of text from the operator. It returns
// ErrEndOfInput once input is exhausted.
type Prompter interface {
	PromptLine(message string) (string, error)
}

// Display shows formatted text to the operator.
type Display interface {
	Show(text string)
}

// Renderer formats game state for a Display.
type Renderer interface {
	Welcome(players int) string
	Registered(players []Player) string
	Board(b *bank.Bank) string
	Question(q bank.Question) string
	QuestionNotFound(category string, value int) string
	Rejection(err error) string
	Correct(player string, value int) string
	Incorrect(answer string) string
	Standings(players []Player) string
	Results(r Results) string
}

// Verdict is the outcome of judging one answer.
type Verdict struct {
	Player  string
	Correct bool
	Award   int
	Answer  string // canonical answer
}
