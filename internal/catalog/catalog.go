// Package catalog defines the immutable question catalog a game is played
// from.
//
// A Catalog is built once, validated, and then only read. The mutable
// per-session state (which questions have been answered) lives in the bank
// package, so the same Catalog can back any number of sessions.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmpty is returned when a catalog has no categories, tiers or entries.
	ErrEmpty = errors.New("catalog is empty")
	// ErrDuplicate is returned when two entries share a (category, value) pair.
	ErrDuplicate = errors.New("duplicate question")
	// ErrUndeclared is returned when an entry references an unknown category or tier.
	ErrUndeclared = errors.New("undeclared category or tier")
	// ErrInvalidAnswer is returned when a canonical answer is not a single token.
	ErrInvalidAnswer = errors.New("canonical answer must be a single word")
)

// Entry is one question definition.
type Entry struct {
	Category string
	Value    int
	Prompt   string
	Answer   string
}

// Key identifies an entry. Category is always lowercase.
type Key struct {
	Category string
	Value    int
}

// String formats the key the way the board labels a question.
func (k Key) String() string {
	return fmt.Sprintf("%s $%d", k.Category, k.Value)
}

// KeyOf builds a normalized key from user supplied text.
func KeyOf(category string, value int) Key {
	return Key{Category: NormalizeCategory(category), Value: value}
}

// NormalizeCategory trims and lowercases a category label.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Catalog is a validated, read-only set of entries.
type Catalog struct {
	categories []string
	tiers      []int
	entries    []Entry
}

// New validates and builds a catalog. Categories are normalized to lowercase
// and keep their declared order; tiers keep their declared order.
func New(categories []string, tiers []int, entries []Entry) (*Catalog, error) {
	if len(categories) == 0 || len(tiers) == 0 || len(entries) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		categories: make([]string, 0, len(categories)),
		tiers:      slices.Clone(tiers),
		entries:    make([]Entry, 0, len(entries)),
	}

	for _, name := range categories {
		name = NormalizeCategory(name)
		if name == "" {
			return nil, fmt.Errorf("blank category name: %w", ErrUndeclared)
		}
		if slices.Contains(c.categories, name) {
			return nil, fmt.Errorf("category %q declared twice: %w", name, ErrDuplicate)
		}
		c.categories = append(c.categories, name)
	}

	for i, tier := range c.tiers {
		if tier <= 0 {
			return nil, fmt.Errorf("tier %d must be positive", tier)
		}
		if slices.Contains(c.tiers[:i], tier) {
			return nil, fmt.Errorf("tier %d declared twice: %w", tier, ErrDuplicate)
		}
	}

	seen := make(map[Key]bool, len(entries))
	for _, e := range entries {
		e.Category = NormalizeCategory(e.Category)
		e.Answer = strings.ToLower(strings.TrimSpace(e.Answer))

		key := Key{Category: e.Category, Value: e.Value}
		if !slices.Contains(c.categories, e.Category) || !slices.Contains(c.tiers, e.Value) {
			return nil, fmt.Errorf("%s: %w", key, ErrUndeclared)
		}
		if seen[key] {
			return nil, fmt.Errorf("%s: %w", key, ErrDuplicate)
		}
		if len(strings.Fields(e.Answer)) != 1 {
			return nil, fmt.Errorf("%s: %w", key, ErrInvalidAnswer)
		}
		seen[key] = true
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// MustNew is like New but panics on an invalid definition. It is meant for
// catalogs compiled into the binary.
func MustNew(categories []string, tiers []int, entries []Entry) *Catalog {
	c, err := New(categories, tiers, entries)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Categories returns the category labels in board order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Tiers returns the dollar values in board order.
func (c *Catalog) Tiers() []int {
	return slices.Clone(c.tiers)
}

// Entries returns a copy of every entry in definition order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
