// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters parses and evaluates filter expressions over games.
//
// A filter expression is a delimited list of clauses (default delimiter: a
// comma, overridable with BGPLAN_FILTER_DELIM). Each clause has the form
// column-operator-term and clauses are implicitly ANDed, left to right.
//
// Operators:
//
//   - == : equals (case-insensitive for text)
//   - != : not equals
//   - ~= : contains (text only)
//   - >= : greater than or equal
//   - <= : less than or equal
//   - >  : greater than
//   - <  : less than
//
// Examples:
//
//   - "name == Go" : the game named Go
//   - "name ~= go, minPlayers > 4" : names containing "go" that need 5+ players
//   - "rating >= 9.0" : highly rated games
//
// Error Handling:
//
// Problems are recovered where they occur rather than surfaced. A clause
// with no recognizable operator, or with an operator but nothing usable on
// either side of it, is logged and skipped. A clause naming a column that
// does not exist aborts the whole expression: Parse returns
// ErrUnknownColumn and callers keep their previous result. A numeric clause
// whose term does not parse matches nothing. Text-only operators applied to
// numbers match nothing.
package filters
