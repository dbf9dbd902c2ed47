// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package planner narrows a game collection with successive filter
// expressions. Each Filter call applies to the result of the previous one
// until Reset is called. Sorting is applied only to the views handed back to
// callers, never to the stored working set.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/staranto/bgplan/internal/filters"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/sorter"
)

// ResetMode selects what Reset restores the working set to.
type ResetMode int

const (
	// ResetFull restores the full collection.
	ResetFull ResetMode = iota
	// ResetEmpty empties the working set.
	ResetEmpty
)

// ParseResetMode maps "full" or "empty" onto a ResetMode. An empty string is
// ResetFull.
func ParseResetMode(s string) (ResetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return ResetFull, nil
	case "empty":
		return ResetEmpty, nil
	default:
		return ResetFull, fmt.Errorf("invalid reset mode %q: must be full or empty", s)
	}
}

// DefaultSortColumn orders views when no column is given.
const DefaultSortColumn = "name"

// Planner holds the full collection and the current working set.
type Planner struct {
	all       game.Set
	working   game.Set
	parser    *filters.Parser
	sorter    *sorter.Registry
	resetMode ResetMode
}

// Option customizes a Planner.
type Option func(*Planner)

// WithResetMode sets what Reset restores. The default is ResetFull.
func WithResetMode(mode ResetMode) Option {
	return func(p *Planner) { p.resetMode = mode }
}

// WithSorter shares a sort registry instead of building one.
func WithSorter(s *sorter.Registry) Option {
	return func(p *Planner) { p.sorter = s }
}

// New returns a Planner over games. Duplicate games collapse to one entry.
func New(games []game.Game, columns *game.Registry, opts ...Option) *Planner {
	all := game.NewSet(games...)
	p := &Planner{
		all:     all,
		working: all.Clone(),
		parser:  filters.NewParser(columns),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sorter == nil {
		p.sorter = sorter.NewRegistry(columns)
	}
	return p
}

// narrow applies expr to the working set. An expression naming an unknown
// column leaves the working set untouched.
func (p *Planner) narrow(expr string) {
	clauses, err := p.parser.Parse(expr)
	if err != nil {
		if errors.Is(err, filters.ErrUnknownColumn) {
			log.Warnf("%v, filter %q ignored", err, expr)
		} else {
			log.WithError(err).Errorf("filter %q ignored", expr)
		}
		return
	}

	p.working = filters.Apply(p.working, clauses)
	log.Debugf("filter applied: expr=%q, remaining=%d", expr, p.working.Len())
}

// Filter narrows the working set by expr and returns it ordered by name.
func (p *Planner) Filter(expr string) []game.Game {
	p.narrow(expr)
	view, _ := p.View(DefaultSortColumn, true)
	return view
}

// FilterSorted narrows the working set by expr and returns it ordered by
// sortOn. The working set is narrowed even when sortOn is unknown.
func (p *Planner) FilterSorted(expr string, sortOn string, ascending bool) ([]game.Game, error) {
	p.narrow(expr)
	return p.View(sortOn, ascending)
}

// View returns the working set ordered by sortOn without narrowing it. An
// empty sortOn orders by name.
func (p *Planner) View(sortOn string, ascending bool) ([]game.Game, error) {
	if sortOn == "" {
		sortOn = DefaultSortColumn
	}
	return p.sorter.Sorted(p.working, sortOn, ascending)
}

// Reset restores the working set per the reset mode.
func (p *Planner) Reset() {
	switch p.resetMode {
	case ResetEmpty:
		p.working = game.Set{}
	default:
		p.working = p.all.Clone()
	}
	log.Debugf("planner reset: remaining=%d", p.working.Len())
}

// Working returns a copy of the working set.
func (p *Planner) Working() game.Set {
	return p.working.Clone()
}

// Count is the size of the working set.
func (p *Planner) Count() int {
	return p.working.Len()
}

// Total is the size of the full collection.
func (p *Planner) Total() int {
	return p.all.Len()
}

// All returns the full collection ordered by name.
func (p *Planner) All() []game.Game {
	return p.all.SortedByName()
}
