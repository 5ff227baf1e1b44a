// Package bank tracks which questions of a catalog have been played.
//
// A Bank is created once per game from an immutable catalog.Catalog. Every
// question starts unanswered and is marked answered exactly once, when an
// answer for it is judged. Lookups of unknown (category, value) pairs never
// fail loudly: Find reports NotFound, IsAnswered treats the pair as consumed,
// CheckAnswer reports false and MarkAnswered does nothing.
package bank

import (
	"iter"
	"slices"
	"strings"

	"github.com/lox/jeopardy/internal/catalog"
)

// Question is a snapshot of one bank entry.
type Question struct {
	Category string
	Value    int
	Prompt   string
	Answer   string
	Answered bool
}

// Key returns the question's (category, value) identity.
func (q Question) Key() catalog.Key {
	return catalog.Key{Category: q.Category, Value: q.Value}
}

// Bank holds the answered state for every question of a catalog. It is not
// safe for concurrent use; a game session owns it exclusively.
type Bank struct {
	catalog   *catalog.Catalog
	questions map[catalog.Key]*Question
	remaining int
}

// New initializes a bank from a catalog with every question unanswered.
func New(c *catalog.Catalog) *Bank {
	entries := c.Entries()
	b := &Bank{
		catalog:   c,
		questions: make(map[catalog.Key]*Question, len(entries)),
		remaining: len(entries),
	}
	for _, e := range entries {
		b.questions[catalog.Key{Category: e.Category, Value: e.Value}] = &Question{
			Category: e.Category,
			Value:    e.Value,
			Prompt:   e.Prompt,
			Answer:   e.Answer,
		}
	}
	return b
}

func (b *Bank) lookup(category string, value int) (*Question, bool) {
	q, ok := b.questions[catalog.KeyOf(category, value)]
	return q, ok
}

// Find returns the question for a category (case-insensitive) and value.
// The boolean is false when no such question exists.
func (b *Bank) Find(category string, value int) (Question, bool) {
	q, ok := b.lookup(category, value)
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// IsAnswered reports whether the question has been played. Unknown
// questions count as answered so they are never offered.
func (b *Bank) IsAnswered(category string, value int) bool {
	q, ok := b.lookup(category, value)
	if !ok {
		return true
	}
	return q.Answered
}

// CheckAnswer reports whether candidate matches the canonical answer,
// ignoring case and surrounding whitespace. Only exact matches count.
func (b *Bank) CheckAnswer(category string, value int, candidate string) bool {
	q, ok := b.lookup(category, value)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(candidate), q.Answer)
}

// MarkAnswered flags the question as played. It is idempotent and ignores
// unknown questions.
func (b *Bank) MarkAnswered(category string, value int) {
	q, ok := b.lookup(category, value)
	if !ok || q.Answered {
		return
	}
	q.Answered = true
	b.remaining--
}

// Remaining returns the number of unanswered questions.
func (b *Bank) Remaining() int {
	return b.remaining
}

// AllAnswered reports whether every question has been played.
func (b *Bank) AllAnswered() bool {
	return b.remaining == 0
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Unanswered yields the category's unanswered dollar values in tier order.
// The sequence reads the bank's current state each time it is ranged over.
func (b *Bank) Unanswered(category string) iter.Seq[int] {
	category = catalog.NormalizeCategory(category)
	return func(yield func(int) bool) {
		for _, tier := range b.catalog.Tiers() {
			q, ok := b.questions[catalog.Key{Category: category, Value: tier}]
			if !ok || q.Answered {
				continue
			}
			if !yield(tier) {
				return
			}
		}
	}
}

// Categories returns the category labels in board order.
func (b *Bank) Categories() []string {
	return b.catalog.Categories()
}

// Tiers returns the dollar values in board order.
func (b *Bank) Tiers() []int {
	return b.catalog.Tiers()
}

// HasCategory reports whether the label names a known category.
func (b *Bank) HasCategory(category string) bool {
	return slices.Contains(b.catalog.Categories(), catalog.NormalizeCategory(category))
}

// HasTier reports whether value is one of the known dollar values.
func (b *Bank) HasTier(value int) bool {
	return slices.Contains(b.catalog.Tiers(), value)
}
