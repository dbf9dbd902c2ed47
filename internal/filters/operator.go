// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"

	"github.com/staranto/bgplan/internal/game"
)

// Operator is a comparison operator.
type Operator int

const (
	OpEquals Operator = iota
	OpNotEquals
	OpContains
	OpGreaterEquals
	OpLessEquals
	OpGreater
	OpLess
)

// operators is the registry, ordered so that multi-character symbols come
// before any single-character symbol they start with.
var operators = []struct {
	op       Operator
	symbol   string
	name     string
	textOnly bool
}{
	{OpEquals, "==", "equals", false},
	{OpNotEquals, "!=", "not-equals", false},
	{OpContains, "~=", "contains", true},
	{OpGreaterEquals, ">=", "greater-equal", false},
	{OpLessEquals, "<=", "less-equal", false},
	{OpGreater, ">", "greater", false},
	{OpLess, "<", "less", false},
}

// Symbol returns the token for the operator, e.g. ">=".
func (o Operator) Symbol() string {
	for _, def := range operators {
		if def.op == o {
			return def.symbol
		}
	}
	return ""
}

// String returns the operator's name, e.g. "greater-equal".
func (o Operator) String() string {
	for _, def := range operators {
		if def.op == o {
			return def.name
		}
	}
	return "unknown"
}

// AppliesTo reports whether the operator is defined for values of kind k.
func (o Operator) AppliesTo(k game.Kind) bool {
	for _, def := range operators {
		if def.op == o {
			return !def.textOnly || k == game.KindText
		}
	}
	return false
}

// Operators returns every operator, longest symbol first.
func Operators() []Operator {
	ops := make([]Operator, 0, len(operators))
	for _, def := range operators {
		ops = append(ops, def.op)
	}
	return ops
}

// Identify returns the operator whose symbol is exactly text.
func Identify(text string) (Operator, bool) {
	text = strings.TrimSpace(text)
	for _, def := range operators {
		if def.symbol == text {
			return def.op, true
		}
	}
	return 0, false
}

// Detect finds the operator in a clause. The leftmost symbol wins and, at a
// given position, the longest symbol wins, so "a >= 1" is ">=" and never ">"
// followed by "=". It returns the byte offset of the symbol.
func Detect(clause string) (Operator, int, bool) {
	for i := 0; i < len(clause); i++ {
		for _, def := range operators {
			if strings.HasPrefix(clause[i:], def.symbol) {
				return def.op, i, true
			}
		}
	}
	return 0, -1, false
}
