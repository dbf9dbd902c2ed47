// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package gamelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

var (
	// ErrEmptyInput is returned for a blank selection.
	ErrEmptyInput = errors.New("selection cannot be empty")
	// ErrInvalidSelection is wrapped by every SelectionError.
	ErrInvalidSelection = errors.New("invalid selection")
)

// SelectionError reports a selection that could not be resolved. Text is the
// offending selection as entered, trimmed.
type SelectionError struct {
	Text   string
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Text)
}

func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelection
}

const (
	reasonRange    = "invalid range"
	reasonIndex    = "invalid selection"
	reasonNotFound = "game not found"
	reasonAmbig    = "ambiguous game name"
)

var rangeRE = regexp.MustCompile(`^(\d+)-(\d+)$`)

// List is a set of games. The zero value is an empty list ready to use.
type List struct {
	games game.Set
}

// New returns an empty List.
func New() *List {
	return &List{games: game.Set{}}
}

func (l *List) set() game.Set {
	if l.games == nil {
		l.games = game.Set{}
	}
	return l.games
}

// AddToList adds the games sel selects out of reference.
func (l *List) AddToList(sel string, reference []game.Game) error {
	picked, err := resolve(sel, reference)
	if err != nil {
		return err
	}

	set := l.set()
	for _, g := range picked {
		set.Add(g)
	}
	log.Debugf("list add: selection=%q, picked=%d, count=%d", strings.TrimSpace(sel), len(picked), set.Len())
	return nil
}

// RemoveFromList removes the games sel selects out of the list. Indexes count
// from the first game in name order; "all" empties the list.
func (l *List) RemoveFromList(sel string) error {
	picked, err := resolve(sel, l.Games())
	if err != nil {
		return err
	}

	set := l.set()
	for _, g := range picked {
		delete(set, g)
	}
	log.Debugf("list remove: selection=%q, picked=%d, count=%d", strings.TrimSpace(sel), len(picked), set.Len())
	return nil
}

// resolve maps sel onto members of reference. Nothing is returned unless the
// whole selection is valid.
func resolve(sel string, reference []game.Game) ([]game.Game, error) {
	text := strings.TrimSpace(sel)
	if text == "" {
		return nil, ErrEmptyInput
	}
	lower := strings.ToLower(text)

	switch {
	case lower == "all":
		return reference, nil

	case rangeRE.MatchString(lower):
		m := rangeRE.FindStringSubmatch(lower)
		start, errStart := strconv.Atoi(m[1])
		end, errEnd := strconv.Atoi(m[2])
		if errStart != nil || errEnd != nil || start < 1 || end < start || end > len(reference) {
			return nil, &SelectionError{Text: text, Reason: reasonRange}
		}
		return reference[start-1 : end], nil

	case isIndex(lower):
		n, err := strconv.Atoi(lower)
		if err != nil || n < 1 || n > len(reference) {
			return nil, &SelectionError{Text: text, Reason: reasonIndex}
		}
		return reference[n-1 : n], nil

	default:
		return resolveName(text, lower, reference)
	}
}

func resolveName(text, lower string, reference []game.Game) ([]game.Game, error) {
	var found []game.Game
	for _, g := range reference {
		if strings.ToLower(g.Name) == lower {
			found = append(found, g)
		}
	}

	switch len(found) {
	case 0:
		return nil, &SelectionError{Text: text, Reason: reasonNotFound}
	case 1:
		return found, nil
	default:
		return nil, &SelectionError{Text: text, Reason: reasonAmbig}
	}
}

func isIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Names returns the names in the list, ascending and case-insensitive.
func (l *List) Names() []string {
	games := l.Games()
	names := make([]string, 0, len(games))
	for _, g := range games {
		names = append(names, g.Name)
	}
	return names
}

// Games returns the games in the list ordered by name.
func (l *List) Games() []game.Game {
	return l.set().SortedByName()
}

// Count is the number of games in the list.
func (l *List) Count() int {
	return l.set().Len()
}

// Contains reports whether g is in the list.
func (l *List) Contains(g game.Game) bool {
	return l.set().Has(g)
}

// Clear empties the list.
func (l *List) Clear() {
	l.games = game.Set{}
}

// WriteTo writes one name per line in name order.
func (l *List) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, name := range l.Names() {
		n, err := io.WriteString(w, name+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save writes the list to path, replacing any existing file.
func (l *List) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create list file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := l.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}

	log.Debugf("list saved: path=%s, count=%d", path, l.Count())
	return nil
}

// Load reads names, one per line, from path and adds each by name out of
// reference. Blank lines are ignored. If any name fails to resolve the list
// is left as it was.
func (l *List) Load(path string, reference []game.Game) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open list file: %w", err)
	}
	defer f.Close()

	return l.LoadFrom(f, reference)
}

// LoadFrom is Load over an open reader.
func (l *List) LoadFrom(r io.Reader, reference []game.Game) error {
	var picked []game.Game

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		found, err := resolveName(name, strings.ToLower(name), reference)
		if err != nil {
			return err
		}
		picked = append(picked, found...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read list: %w", err)
	}

	set := l.set()
	for _, g := range picked {
		set.Add(g)
	}
	return nil
}
