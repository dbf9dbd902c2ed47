// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package game

import (
	"cmp"
	"slices"
	"strings"
)

// Game is one board game in a collection.
type Game struct {
	Name        string  `json:"name" yaml:"name"`
	ID          int     `json:"id" yaml:"id"`
	MinPlayers  int     `json:"minPlayers" yaml:"minPlayers"`
	MaxPlayers  int     `json:"maxPlayers" yaml:"maxPlayers"`
	MinPlayTime int     `json:"minTime" yaml:"minTime"`
	MaxPlayTime int     `json:"maxTime" yaml:"maxTime"`
	Difficulty  float64 `json:"difficulty" yaml:"difficulty"`
	Rank        int     `json:"rank" yaml:"rank"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Year        int     `json:"year" yaml:"year"`
}

// Set is an unordered collection of games without duplicates.
type Set map[Game]struct{}

// NewSet returns a Set holding the given games.
func NewSet(games ...Game) Set {
	s := make(Set, len(games))
	for _, g := range games {
		s[g] = struct{}{}
	}
	return s
}

// Add inserts g. Adding a game already present is a no-op.
func (s Set) Add(g Game) {
	s[g] = struct{}{}
}

// Has reports whether g is in the set.
func (s Set) Has(g Game) bool {
	_, ok := s[g]
	return ok
}

// Len returns the number of games in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for g := range s {
		c[g] = struct{}{}
	}
	return c
}

// Slice returns the members of s in map iteration order, which is
// unspecified.
func (s Set) Slice() []Game {
	games := make([]Game, 0, len(s))
	for g := range s {
		games = append(games, g)
	}
	return games
}

// SubsetOf reports whether every member of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for g := range s {
		if !other.Has(g) {
			return false
		}
	}
	return true
}

// ByName orders games ascending by case-insensitive name. Ties fall back to
// the exact name and then every other field, so distinct games never compare
// equal and the order does not depend on set iteration.
func ByName(a, b Game) int {
	return cmp.Or(
		strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
		strings.Compare(a.Name, b.Name),
		cmp.Compare(a.ID, b.ID),
		cmp.Compare(a.Year, b.Year),
		cmp.Compare(a.Rating, b.Rating),
		cmp.Compare(a.Difficulty, b.Difficulty),
		cmp.Compare(a.Rank, b.Rank),
		cmp.Compare(a.MinPlayers, b.MinPlayers),
		cmp.Compare(a.MaxPlayers, b.MaxPlayers),
		cmp.Compare(a.MinPlayTime, b.MinPlayTime),
		cmp.Compare(a.MaxPlayTime, b.MaxPlayTime),
	)
}

// SortedByName returns the members of s ordered by ByName.
func (s Set) SortedByName() []Game {
	games := s.Slice()
	slices.SortFunc(games, ByName)
	return games
}
