// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

var (
	// ErrUnknownColumn aborts a whole expression.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownOperator marks a clause without an operator. The clause is
	// skipped.
	ErrUnknownOperator = errors.New("no operator")
	// ErrMalformedClause marks a clause with an operator but an empty column
	// or term. The clause is skipped.
	ErrMalformedClause = errors.New("malformed clause")
	// ErrNumericParse marks a numeric clause whose term is not a number. The
	// clause matches nothing.
	ErrNumericParse = errors.New("invalid numeric term")
)

// Clause is one parsed column-operator-term unit of an expression.
type Clause struct {
	Column   *game.Column
	Operator Operator
	Term     string
}

// String renders the clause back into expression form.
func (c Clause) String() string {
	return fmt.Sprintf("%s %s %s", c.Column.Name, c.Operator.Symbol(), c.Term)
}

// Parser turns expressions into clauses against a column registry.
type Parser struct {
	columns *game.Registry
	delim   string
}

// NewParser returns a Parser resolving column names through columns.
func NewParser(columns *game.Registry) *Parser {
	// Default delimiter is ",", allow an override for situations where a term
	// contains commas.
	delim := ","
	if d, ok := os.LookupEnv("BGPLAN_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	return &Parser{columns: columns, delim: delim}
}

// Parse splits expr into clauses, in order. Clauses without an operator and
// malformed clauses are logged and skipped. A clause naming an unknown column
// stops parsing and returns an error wrapping ErrUnknownColumn; no clauses are
// returned in that case.
func (p *Parser) Parse(expr string) ([]Clause, error) {
	//nolint:prealloc // Skipped clauses make the final length unknown.
	var clauses []Clause

	for _, part := range strings.Split(expr, p.delim) {
		if strings.TrimSpace(part) == "" {
			continue
		}

		op, _, ok := Detect(part)
		if !ok {
			log.Warnf("%v in %q, clause skipped", ErrUnknownOperator, part)
			continue
		}

		name, term, err := SplitClause(part, op)
		if err != nil {
			log.Warnf("%v, clause skipped", err)
			continue
		}

		column, ok := p.columns.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
		}

		clause := Clause{Column: column, Operator: op, Term: term}
		log.Tracef("clause parsed: %s", clause)
		clauses = append(clauses, clause)
	}

	return clauses, nil
}

// SplitClause splits clause on the first occurrence of op's symbol and trims
// both sides. The term keeps any interior spaces.
func SplitClause(clause string, op Operator) (column string, term string, err error) {
	left, right, found := strings.Cut(clause, op.Symbol())
	column = strings.TrimSpace(left)
	term = strings.TrimSpace(right)

	if !found || column == "" || term == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedClause, strings.TrimSpace(clause))
	}

	return column, term, nil
}
