// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package game

import (
	"fmt"
	"strings"
)

// Kind is the declared value kind of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
)

// String returns the lower case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Numeric reports whether values of this kind compare as numbers.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindDecimal
}

// Value is a field value tagged with its kind. Exactly one of Text, Int or
// Dec is meaningful, as selected by Kind.
type Value struct {
	Kind Kind
	Text string
	Int  int64
	Dec  float64
}

// TextValue wraps s as a text Value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// IntValue wraps i as an integer Value.
func IntValue(i int) Value { return Value{Kind: KindInteger, Int: int64(i)} }

// DecValue wraps f as a decimal Value.
func DecValue(f float64) Value { return Value{Kind: KindDecimal, Dec: f} }

// Float returns the numeric value widened to float64. Text values return 0.
func (v Value) Float() float64 {
	switch v.Kind {
	case KindInteger:
		return float64(v.Int)
	case KindDecimal:
		return v.Dec
	default:
		return 0
	}
}

// Any returns the underlying Go value (string, int or float64).
func (v Value) Any() any {
	switch v.Kind {
	case KindInteger:
		return int(v.Int)
	case KindDecimal:
		return v.Dec
	default:
		return v.Text
	}
}

// String formats the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", v.Int)
	case KindDecimal:
		return fmt.Sprintf("%g", v.Dec)
	default:
		return v.Text
	}
}

// Column identifies one field of a Game.
type Column struct {
	// Name is the canonical column name used in output and help text.
	Name string
	// Aliases are alternate names accepted by Registry.Resolve.
	Aliases []string
	Kind    Kind
	// Get reads the column's value from a game.
	Get func(Game) Value
	// Set stores a parsed value into a game. Used by collection loaders.
	Set func(*Game, Value)
}

// Value is shorthand for c.Get(g).
func (c *Column) Value(g Game) Value {
	return c.Get(g)
}

// Names returns the canonical name followed by the aliases.
func (c *Column) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Registry resolves column names to columns. It is immutable once built.
type Registry struct {
	columns []*Column
	byName  map[string]*Column
}

// NewRegistry builds the registry for the Game schema.
func NewRegistry() *Registry {
	columns := []*Column{
		{
			Name: "name", Aliases: []string{"objectName"}, Kind: KindText,
			Get: func(g Game) Value { return TextValue(g.Name) },
			Set: func(g *Game, v Value) { g.Name = v.Text },
		},
		{
			Name: "id", Aliases: []string{"objectId"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.ID) },
			Set: func(g *Game, v Value) { g.ID = int(v.Int) },
		},
		{
			Name: "rating", Aliases: []string{"average", "avgRating"}, Kind: KindDecimal,
			Get: func(g Game) Value { return DecValue(g.Rating) },
			Set: func(g *Game, v Value) { g.Rating = v.Dec },
		},
		{
			Name: "difficulty", Aliases: []string{"avgWeight", "weight"}, Kind: KindDecimal,
			Get: func(g Game) Value { return DecValue(g.Difficulty) },
			Set: func(g *Game, v Value) { g.Difficulty = v.Dec },
		},
		{
			Name: "rank", Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.Rank) },
			Set: func(g *Game, v Value) { g.Rank = int(v.Int) },
		},
		{
			Name: "minPlayers", Aliases: []string{"min_players"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.MinPlayers) },
			Set: func(g *Game, v Value) { g.MinPlayers = int(v.Int) },
		},
		{
			Name: "maxPlayers", Aliases: []string{"max_players"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.MaxPlayers) },
			Set: func(g *Game, v Value) { g.MaxPlayers = int(v.Int) },
		},
		{
			Name: "minTime", Aliases: []string{"minPlayTime", "min_time"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.MinPlayTime) },
			Set: func(g *Game, v Value) { g.MinPlayTime = int(v.Int) },
		},
		{
			Name: "maxTime", Aliases: []string{"maxPlayTime", "max_time"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.MaxPlayTime) },
			Set: func(g *Game, v Value) { g.MaxPlayTime = int(v.Int) },
		},
		{
			Name: "year", Aliases: []string{"yearPublished"}, Kind: KindInteger,
			Get: func(g Game) Value { return IntValue(g.Year) },
			Set: func(g *Game, v Value) { g.Year = int(v.Int) },
		},
	}

	r := &Registry{
		columns: columns,
		byName:  make(map[string]*Column),
	}
	for _, c := range columns {
		for _, n := range c.Names() {
			r.byName[strings.ToLower(n)] = c
		}
	}
	return r
}

// Resolve looks up a column by name or alias, ignoring case and surrounding
// whitespace.
func (r *Registry) Resolve(name string) (*Column, bool) {
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Name returns the name column, which every registry has.
func (r *Registry) Name() *Column {
	c, _ := r.Resolve("name")
	return c
}

// Columns returns the columns in schema order.
func (r *Registry) Columns() []*Column {
	out := make([]*Column, len(r.columns))
	copy(out, r.columns)
	return out
}
