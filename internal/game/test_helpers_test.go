package game

import (
	"fmt"
	"strings"

	"github.com/lox/jeopardy/internal/bank"
	"github.com/lox/jeopardy/internal/catalog"
)

// scriptPrompter replays a fixed list of lines and then reports
// ErrEndOfInput.
type scriptPrompter struct {
	lines    []string
	prompts  []string
	onPrompt func()
	err      error // returned instead of ErrEndOfInput when set
}

func script(lines ...string) *scriptPrompter {
	return &scriptPrompter{lines: lines}
}

func (p *scriptPrompter) PromptLine(message string) (string, error) {
	p.prompts = append(p.prompts, message)
	if p.onPrompt != nil {
		p.onPrompt()
	}
	if len(p.lines) == 0 {
		if p.err != nil {
			return "", p.err
		}
		return "", ErrEndOfInput
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

// recordDisplay keeps everything shown, in order.
type recordDisplay struct {
	shown []string
}

func (d *recordDisplay) Show(text string) {
	d.shown = append(d.shown, text)
}

func (d *recordDisplay) withPrefix(prefix string) []string {
	var out []string
	for _, s := range d.shown {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}

// textRenderer renders game state as short, greppable lines.
type textRenderer struct {
	rejections []error
}

func (r *textRenderer) Welcome(players int) string {
	return fmt.Sprintf("WELCOME %d", players)
}

func (r *textRenderer) Registered(players []Player) string {
	return "REGISTERED " + formatPlayers(players)
}

func (r *textRenderer) Board(b *bank.Bank) string {
	var cols []string
	for _, category := range b.Categories() {
		var values []string
		for v := range b.Unanswered(category) {
			values = append(values, fmt.Sprint(v))
		}
		cols = append(cols, category+":"+strings.Join(values, ","))
	}
	return "BOARD " + strings.Join(cols, " ")
}

func (r *textRenderer) Question(q bank.Question) string {
	return fmt.Sprintf("QUESTION %s $%d: %s", q.Category, q.Value, q.Prompt)
}

func (r *textRenderer) QuestionNotFound(category string, value int) string {
	return fmt.Sprintf("NOTFOUND %s $%d", category, value)
}

func (r *textRenderer) Rejection(err error) string {
	r.rejections = append(r.rejections, err)
	return "REJECT " + err.Error()
}

func (r *textRenderer) Correct(player string, value int) string {
	return fmt.Sprintf("CORRECT %s %d", player, value)
}

func (r *textRenderer) Incorrect(answer string) string {
	return "INCORRECT " + answer
}

func (r *textRenderer) Standings(players []Player) string {
	return "STANDINGS " + formatPlayers(players)
}

func (r *textRenderer) Results(res Results) string {
	return fmt.Sprintf("RESULTS %s winner=%s", formatPlayers(res.Ranking), res.Winner.Name)
}

func formatPlayers(players []Player) string {
	parts := make([]string, len(players))
	for i, p := range players {
		parts[i] = fmt.Sprintf("%s=%d", p.Name, p.Score)
	}
	return strings.Join(parts, " ")
}

// twoQuestionCatalog has a science $100 and a history $200 question; the
// other two cells of its 2x2 board are empty.
func twoQuestionCatalog() *catalog.Catalog {
	return catalog.MustNew(
		[]string{"science", "history"},
		[]int{100, 200},
		[]catalog.Entry{
			{Category: "science", Value: 100, Prompt: "This liquid covers most of the planet.", Answer: "water"},
			{Category: "history", Value: 200, Prompt: "All roads lead here.", Answer: "rome"},
		},
	)
}

type harness struct {
	bank     *bank.Bank
	prompter *scriptPrompter
	display  *recordDisplay
	renderer *textRenderer
	session  *Session
}

func newHarness(c *catalog.Catalog, p *scriptPrompter, opts ...Option) *harness {
	h := &harness{
		bank:     bank.New(c),
		prompter: p,
		display:  &recordDisplay{},
		renderer: &textRenderer{},
	}
	h.session = NewSession(h.bank, h.prompter, h.display, h.renderer, opts...)
	return h
}

// registered returns a harness whose session already has the roster.
func registered(c *catalog.Catalog, roster ...string) *harness {
	h := newHarness(c, script(), WithPlayers(len(roster)))
	for _, name := range roster {
		if err := h.session.Register(name); err != nil {
			panic(err)
		}
	}
	return h
}

func reasons(errs []error) []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err.(*RejectionError).Reason
	}
	return out
}
