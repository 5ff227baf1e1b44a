package game

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/jeopardy/internal/bank"
	"github.com/lox/jeopardy/internal/catalog"
)

// DefaultPlayers is the roster size used when WithPlayers is not given.
const DefaultPlayers = 4

// ErrRosterFull is returned by Register once every seat is taken.
var ErrRosterFull = errors.New("roster is full")

// Phase is the session's position in the game lifecycle
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRounds
	PhaseResults
)

func (p Phase) String() string {
	return [...]string{"setup", "rounds", "results"}[p]
}

// Results is the final outcome of a session.
type Results struct {
	Ranking    []Player
	Winner     Player
	Rounds     int
	EndedEarly bool
	Elapsed    time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithPlayers sets the number of players collected during setup.
func WithPlayers(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.size = n
		}
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to time the game.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Session runs a single game over one bank.
type Session struct {
	bank     *bank.Bank
	prompter Prompter
	display  Display
	renderer Renderer
	logger   *log.Logger
	clock    quartz.Clock

	size    int
	players []Player
	phase   Phase
	rounds  int
	started time.Time
}

// NewSession creates a session in the setup phase.
func NewSession(b *bank.Bank, prompter Prompter, display Display, renderer Renderer, opts ...Option) *Session {
	s := &Session{
		bank:     b,
		prompter: prompter,
		display:  display,
		renderer: renderer,
		logger:   log.New(io.Discard),
		clock:    quartz.NewReal(),
		size:     DefaultPlayers,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session")
	return s
}

// Players returns the roster in registration order.
func (s *Session) Players() []Player {
	return slices.Clone(s.players)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Rounds returns the number of completed rounds.
func (s *Session) Rounds() int {
	return s.rounds
}

// Run plays a full game and returns the final results. Running out of
// input during the rounds ends the game early with the scores so far;
// running out during setup is an error.
func (s *Session) Run() (Results, error) {
	s.started = s.clock.Now()
	s.logger.Info("Starting game", "players", s.size, "questions", s.bank.Len())
	s.display.Show(s.renderer.Welcome(s.size))

	if err := s.setup(); err != nil {
		return Results{}, fmt.Errorf("registering players: %w", err)
	}
	s.display.Show(s.renderer.Registered(s.Players()))

	s.phase = PhaseRounds
	endedEarly := false
	for !s.bank.AllAnswered() {
		if err := s.playRound(); err != nil {
			if errors.Is(err, ErrEndOfInput) {
				s.logger.Warn("Input exhausted, ending game early", "rounds", s.rounds)
			} else {
				s.logger.Error("Input failed, ending game early", "rounds", s.rounds, "error", err)
			}
			endedEarly = true
			break
		}
	}

	return s.finish(endedEarly), nil
}

// Register adds a player with a score of zero. Names are trimmed and must
// be non-blank and not already registered.
func (s *Session) Register(name string) error {
	if len(s.players) >= s.size {
		return ErrRosterFull
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return reject(ErrBlankName, "Player name cannot be blank. Please try again.")
	}
	if FindPlayer(s.players, name) >= 0 {
		return reject(ErrDuplicatePlayer, "Player %q is already registered. Please choose another name.", name)
	}

	s.players = append(s.players, Player{Name: name})
	s.logger.Info("Player registered", "player", name, "seat", len(s.players))
	return nil
}

// SelectPlayer resolves a name to a registered player. Matching is exact
// and case sensitive.
func (s *Session) SelectPlayer(name string) (string, error) {
	name = strings.TrimSpace(name)
	if FindPlayer(s.players, name) < 0 {
		return "", reject(ErrUnknownPlayer, "Player %q not found. Please try again.", name)
	}
	return name, nil
}

// ValidateSelection checks a category and dollar value typed by the
// operator. Unknown category is reported before unknown value, which is
// reported before an already answered question.
func (s *Session) ValidateSelection(category, valueText string) (catalog.Key, error) {
	category = catalog.NormalizeCategory(category)
	if !s.bank.HasCategory(category) {
		return catalog.Key{}, reject(ErrUnknownCategory, "Invalid category %q. Please try again.", category)
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueText))
	if err != nil || !s.bank.HasTier(value) {
		return catalog.Key{}, reject(ErrUnknownValue, "Invalid dollar amount. Please enter %s.", orList(s.bank.Tiers()))
	}

	if s.bank.IsAnswered(category, value) {
		return catalog.Key{}, reject(ErrAlreadyAnswered, "That question has already been answered. Please choose another.")
	}

	return catalog.Key{Category: category, Value: value}, nil
}

// Judge scores a candidate answer for a player and consumes the question
// whether or not the answer was right.
func (s *Session) Judge(player string, category string, value int, candidate string) (Verdict, error) {
	idx := FindPlayer(s.players, player)
	if idx < 0 {
		return Verdict{}, reject(ErrUnknownPlayer, "Player %q not found. Please try again.", player)
	}

	v := Verdict{Player: player}
	if q, ok := s.bank.Find(category, value); ok {
		v.Answer = q.Answer
	}
	if s.bank.CheckAnswer(category, value, candidate) {
		s.players[idx].Score += value
		v.Correct = true
		v.Award = value
	}
	s.bank.MarkAnswered(category, value)

	s.logger.Info("Question judged",
		"player", player,
		"category", catalog.NormalizeCategory(category),
		"value", value,
		"candidate", candidate,
		"correct", v.Correct,
		"remaining", s.bank.Remaining())
	return v, nil
}

func (s *Session) setup() error {
	for len(s.players) < s.size {
		line, err := s.prompter.PromptLine(fmt.Sprintf("  Player %d name: ", len(s.players)+1))
		if err != nil {
			return err
		}
		if err := s.Register(line); err != nil {
			if !s.rejected(err) {
				return err
			}
		}
	}
	return nil
}

func (s *Session) playRound() error {
	s.display.Show(s.renderer.Board(s.bank))

	player, err := s.promptPlayer()
	if err != nil {
		return err
	}

	key, err := s.promptSelection()
	if err != nil {
		return err
	}

	if q, ok := s.bank.Find(key.Category, key.Value); ok {
		s.display.Show(s.renderer.Question(q))
	} else {
		s.logger.Error("Validated question missing from bank", "category", key.Category, "value", key.Value)
		s.display.Show(s.renderer.QuestionNotFound(key.Category, key.Value))
	}

	candidate, err := s.promptAnswer()
	if err != nil {
		return err
	}

	v, err := s.Judge(player, key.Category, key.Value, candidate)
	if err != nil {
		return err
	}
	if v.Correct {
		s.display.Show(s.renderer.Correct(v.Player, v.Award))
	} else {
		s.display.Show(s.renderer.Incorrect(v.Answer))
	}

	s.rounds++
	s.display.Show(s.renderer.Standings(s.Players()))
	s.logger.Debug("Round complete", "round", s.rounds, "remaining", s.bank.Remaining())
	return nil
}

func (s *Session) promptPlayer() (string, error) {
	for {
		line, err := s.prompter.PromptLine("Enter the name of the player selecting a question: ")
		if err != nil {
			return "", err
		}
		name, err := s.SelectPlayer(line)
		if err == nil {
			return name, nil
		}
		s.rejected(err)
	}
}

func (s *Session) promptSelection() (catalog.Key, error) {
	categoryPrompt := fmt.Sprintf("Enter category (%s): ", strings.Join(s.bank.Categories(), " / "))
	valuePrompt := fmt.Sprintf("Enter dollar amount (%s): ", joinInts(s.bank.Tiers(), " / "))

	for {
		category, err := s.prompter.PromptLine(categoryPrompt)
		if err != nil {
			return catalog.Key{}, err
		}
		valueText, err := s.prompter.PromptLine(valuePrompt)
		if err != nil {
			return catalog.Key{}, err
		}
		key, err := s.ValidateSelection(category, valueText)
		if err == nil {
			return key, nil
		}
		s.rejected(err)
	}
}

func (s *Session) promptAnswer() (string, error) {
	for {
		line, err := s.prompter.PromptLine(`Your answer (must start with "what is" or "who is"): `)
		if err != nil {
			return "", err
		}
		candidate, err := ParseAnswer(line)
		if err == nil {
			return candidate, nil
		}
		s.rejected(err)
	}
}

// rejected shows a rejection to the operator. It reports false for errors
// that are not recoverable input problems.
func (s *Session) rejected(err error) bool {
	var rej *RejectionError
	if !errors.As(err, &rej) {
		return false
	}
	s.logger.Debug("Input rejected", "reason", rej.Reason, "phase", s.phase)
	s.display.Show(s.renderer.Rejection(rej))
	return true
}

func (s *Session) finish(endedEarly bool) Results {
	s.phase = PhaseResults

	r := Results{
		Ranking:    Rank(s.players),
		Rounds:     s.rounds,
		EndedEarly: endedEarly,
		Elapsed:    s.clock.Since(s.started),
	}
	if len(r.Ranking) > 0 {
		r.Winner = r.Ranking[0]
	}

	s.logger.Info("Game over",
		"winner", r.Winner.Name,
		"score", r.Winner.Score,
		"rounds", r.Rounds,
		"endedEarly", r.EndedEarly,
		"elapsed", r.Elapsed)
	s.display.Show(s.renderer.Results(r))
	return r
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// orList formats values as "100, 200, 300, or 400".
func orList(values []int) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return strconv.Itoa(values[0])
	case 2:
		return fmt.Sprintf("%d or %d", values[0], values[1])
	}
	head := joinInts(values[:len(values)-1], ", ")
	return fmt.Sprintf("%s, or %d", head, values[len(values)-1])
}
