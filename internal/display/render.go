// Package display renders game state for a terminal using lipgloss.
package display

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/jeopardy/internal/bank"
	"github.com/lox/jeopardy/internal/game"
)

const emptyCell = "----"

// Renderer formats game state as styled text. It implements game.Renderer.
type Renderer struct {
	styles *Styles
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer for output written to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{styles: NewStyles(lipgloss.NewRenderer(w), color)}
}

// Welcome renders the title and the registration heading.
func (r *Renderer) Welcome(players int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Welcome to Jeopardy!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Enter the names of the %d players:", players)
	return b.String()
}

// Registered announces that the roster is complete.
func (r *Renderer) Registered(players []game.Player) string {
	return "\n" + r.styles.Success.Render("Players registered! Let the game begin!")
}

// Board renders the category grid. Answered and missing questions show as
// an empty cell.
func (r *Renderer) Board(b *bank.Bank) string {
	categories := b.Categories()

	headers := make([]string, len(categories))
	for i, c := range categories {
		headers[i] = strings.ToUpper(c)
	}

	open := make([][]int, len(categories))
	for i, c := range categories {
		open[i] = slices.Collect(b.Unanswered(c))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		})

	for _, tier := range b.Tiers() {
		cells := make([]string, len(categories))
		for i := range categories {
			if slices.Contains(open[i], tier) {
				cells[i] = fmt.Sprintf("$%d", tier)
			} else {
				cells[i] = r.styles.Taken.Render(emptyCell)
			}
		}
		t.Row(cells...)
	}

	return "\n" + t.Render() + "\n"
}

// Question renders the selected clue without its answer.
func (r *Renderer) Question(q bank.Question) string {
	label := r.styles.Category.Render(fmt.Sprintf("[%s - $%d]", q.Category, q.Value))
	return fmt.Sprintf("\n%s\n%s %s\n", label, r.styles.Question.Render("Question:"), q.Prompt)
}

// QuestionNotFound reports a selection with no question behind it.
func (r *Renderer) QuestionNotFound(category string, value int) string {
	return r.styles.Warning.Render(fmt.Sprintf("Question not found (%s - $%d).", category, value))
}

// Rejection renders the message of a refused input.
func (r *Renderer) Rejection(err error) string {
	return "  " + r.styles.Error.Render(err.Error())
}

// Correct announces a correct answer and its award.
func (r *Renderer) Correct(player string, value int) string {
	return "  " + r.styles.Success.Render(fmt.Sprintf("Correct! %s earns $%d!", player, value))
}

// Incorrect announces a wrong answer, revealing answer when it is known.
func (r *Renderer) Incorrect(answer string) string {
	if answer == "" {
		return "  " + r.styles.Error.Render("Incorrect!")
	}
	return "  " + r.styles.Error.Render("Incorrect! The correct answer was: ") + answer
}

// Standings renders scores in registration order.
func (r *Renderer) Standings(players []game.Player) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("PLAYER", "SCORE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Info.PaddingRight(2)
			}
			if col == 1 {
				return r.styles.Money
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	for _, p := range players {
		t.Row(p.Name, money(p.Score))
	}

	return "\n  Current Scores:\n" + t.Render() + "\n"
}

// Results renders the final ranking, the winner and the game length.
func (r *Renderer) Results(res game.Results) string {
	var b strings.Builder
	rule := r.styles.Separator.Render(strings.Repeat("=", 40))

	b.WriteString("\n" + rule + "\n")
	b.WriteString(r.styles.Title.Render("FINAL RESULTS") + "\n")
	b.WriteString(rule + "\n")

	if len(res.Ranking) == 0 {
		b.WriteString("  No players.\n")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return r.styles.Winner.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
	for i, p := range res.Ranking {
		t.Row(strconv.Itoa(i+1)+".", p.Name, money(p.Score))
	}
	b.WriteString(t.Render() + "\n")
	b.WriteString(rule + "\n")

	b.WriteString("  " + r.styles.Winner.Render(fmt.Sprintf("Winner: %s with %s!", res.Winner.Name, money(res.Winner.Score))) + "\n")
	if res.EndedEarly {
		b.WriteString("  " + r.styles.Warning.Render(fmt.Sprintf("Game ended early after %s.", plural(res.Rounds, "round"))) + "\n")
	}
	b.WriteString("  " + r.styles.Info.Render(fmt.Sprintf("%s played in %s", plural(res.Rounds, "round"), res.Elapsed.Round(time.Second))) + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

func money(amount int) string {
	return "$" + strconv.Itoa(amount)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
