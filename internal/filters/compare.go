// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strconv"
	"strings"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

// Predicate reports whether a game satisfies a clause.
type Predicate func(game.Game) bool

func never(game.Game) bool { return false }

// Compile turns a clause into a predicate. The term is parsed once here
// rather than per game.
func Compile(c Clause) Predicate {
	if !c.Operator.AppliesTo(c.Column.Kind) {
		log.Debugf("%s not defined for %s column %s", c.Operator, c.Column.Kind, c.Column.Name)
		return never
	}

	switch kind := c.Column.Kind; {
	case kind == game.KindText:
		term := strings.ToLower(c.Term)
		return func(g game.Game) bool {
			return checkText(strings.ToLower(c.Column.Get(g).Text), c.Operator, term)
		}

	case kind.Numeric():
		target, err := parseTerm(kind, c.Term)
		if err != nil {
			log.Warnf("%v %q for %s", ErrNumericParse, c.Term, c.Column.Name)
			return never
		}
		return func(g game.Game) bool {
			return checkNumeric(c.Column.Get(g).Float(), c.Operator, target)
		}

	default:
		return never
	}
}

// Match evaluates a single clause against a single game.
func Match(g game.Game, c Clause) bool {
	return Compile(c)(g)
}

// Apply returns the members of games satisfying every clause. The input set
// is never modified.
func Apply(games game.Set, clauses []Clause) game.Set {
	result := games.Clone()
	for _, c := range clauses {
		pred := Compile(c)
		for g := range result {
			if !pred(g) {
				delete(result, g)
			}
		}
	}
	return result
}

// parseTerm parses a search term per the column kind and widens it to
// float64. Integer columns require an integer term.
func parseTerm(kind game.Kind, term string) (float64, error) {
	if kind == game.KindInteger {
		i, err := strconv.Atoi(term)
		if err != nil {
			return 0, err
		}
		return float64(i), nil
	}
	return strconv.ParseFloat(term, 64)
}

// checkText compares lower-cased strings. Ordering operators compare
// lexicographically.
func checkText(value string, op Operator, term string) bool {
	switch op {
	case OpEquals:
		return value == term
	case OpNotEquals:
		return value != term
	case OpContains:
		return strings.Contains(value, term)
	case OpGreaterEquals:
		return value >= term
	case OpLessEquals:
		return value <= term
	case OpGreater:
		return value > term
	case OpLess:
		return value < term
	default:
		return false
	}
}

// checkNumeric compares two widened numbers. Equality is exact.
func checkNumeric(value float64, op Operator, target float64) bool {
	switch op {
	case OpEquals:
		return value == target
	case OpNotEquals:
		return value != target
	case OpGreaterEquals:
		return value >= target
	case OpLessEquals:
		return value <= target
	case OpGreater:
		return value > target
	case OpLess:
		return value < target
	default:
		return false
	}
}
