package game

import (
	"cmp"
	"slices"
)

// Player represents a registered contestant
type Player struct {
	Name  string
	Score int
}

// FindPlayer returns the index of the first player whose name matches
// exactly, or -1.
func FindPlayer(players []Player, name string) int {
	return slices.IndexFunc(players, func(p Player) bool {
		return p.Name == name
	})
}

// Rank returns a copy of players ordered by score, highest first. Equal
// scores keep their registration order.
func Rank(players []Player) []Player {
	ranked := slices.Clone(players)
	slices.SortStableFunc(ranked, func(a, b Player) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}
