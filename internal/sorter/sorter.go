// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package sorter orders views of games by a single column.
package sorter

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/staranto/bgplan/internal/game"
)

// ErrUnknownColumn is returned when a sort column cannot be resolved.
var ErrUnknownColumn = errors.New("unknown sort column")

// Comparator is a total order over games.
type Comparator func(a, b game.Game) int

// Registry maps each column to its comparator. It is built once and shared.
type Registry struct {
	columns     *game.Registry
	comparators map[*game.Column]Comparator
}

// NewRegistry builds comparators for every column in columns. Text columns
// compare case-insensitively, numeric columns numerically.
func NewRegistry(columns *game.Registry) *Registry {
	r := &Registry{
		columns:     columns,
		comparators: make(map[*game.Column]Comparator),
	}

	for _, c := range columns.Columns() {
		r.comparators[c] = comparatorFor(c)
	}

	return r
}

func comparatorFor(c *game.Column) Comparator {
	switch c.Kind {
	case game.KindText:
		return func(a, b game.Game) int {
			return strings.Compare(strings.ToLower(c.Get(a).Text), strings.ToLower(c.Get(b).Text))
		}
	case game.KindInteger:
		return func(a, b game.Game) int {
			return cmp.Compare(c.Get(a).Int, c.Get(b).Int)
		}
	default:
		return func(a, b game.Game) int {
			return cmp.Compare(c.Get(a).Dec, c.Get(b).Dec)
		}
	}
}

// Comparator returns the comparator for the named column, reversed when
// ascending is false.
func (r *Registry) Comparator(column string, ascending bool) (Comparator, error) {
	c, ok := r.columns.Resolve(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	compare := r.comparators[c]
	if !ascending {
		return func(a, b game.Game) int { return compare(b, a) }, nil
	}
	return compare, nil
}

// Sort orders games in place by the named column. Games that compare equal
// keep their relative order.
func (r *Registry) Sort(games []game.Game, column string, ascending bool) error {
	compare, err := r.Comparator(column, ascending)
	if err != nil {
		return err
	}

	slices.SortStableFunc(games, compare)
	return nil
}

// Sorted returns an ordered copy of the members of set.
func (r *Registry) Sorted(set game.Set, column string, ascending bool) ([]game.Game, error) {
	games := set.Slice()
	if err := r.Sort(games, column, ascending); err != nil {
		return nil, err
	}
	return games, nil
}
