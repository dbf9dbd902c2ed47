// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/staranto/bgplan/internal/attrs"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/gamelist"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/output"
	"github.com/staranto/bgplan/internal/planner"
)

// Session holds the state of one console run. Exec is safe to call from
// several goroutines; calls are serialized.
type Session struct {
	mu sync.Mutex

	planner *planner.Planner
	list    *gamelist.List
	columns *game.Registry
	attrs   *attrs.AttrList
	opts    output.Options

	sortOn    string
	ascending bool
	// view is the last ordered view shown; list adds resolve against it.
	view []game.Game
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithAttrs sets the columns shown for games.
func WithAttrs(al *attrs.AttrList) SessionOption {
	return func(s *Session) { s.attrs = al }
}

// WithOutput sets table rendering options. The format is always text.
func WithOutput(opts output.Options) SessionOption {
	return func(s *Session) { s.opts = opts }
}

// WithSort sets the initial sort column and direction.
func WithSort(column string, ascending bool) SessionOption {
	return func(s *Session) {
		s.sortOn = column
		s.ascending = ascending
	}
}

// NewSession returns a Session over p and list.
func NewSession(p *planner.Planner, list *gamelist.List, columns *game.Registry, opts ...SessionOption) *Session {
	s := &Session{
		planner:   p,
		list:      list,
		columns:   columns,
		opts:      output.Options{Titles: true, Index: true, Padding: 2},
		sortOn:    planner.DefaultSortColumn,
		ascending: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.attrs == nil {
		s.attrs = attrs.NewAttrList(columns)
	}
	s.opts.Format = output.FormatText
	return s
}

// command is one console verb.
type command struct {
	names []string
	usage string
	run   func(s *Session, arg string) (string, error)
}

// commands is filled in init since help reads it.
var commands []command

func init() {
	commands = []command{
		{[]string{"filter", "f"}, "filter <expr>      narrow the view, e.g. f minPlayers >= 4, rating > 7", (*Session).filter},
		{[]string{"sort"}, "sort <col> [desc]  order the view by a column", (*Session).sort},
		{[]string{"reset"}, "reset              drop all filters", (*Session).reset},
		{[]string{"show", "ls"}, "show               show the current view", (*Session).show},
		{[]string{"add"}, "add <sel>          add games from the view: all, N, N-M or a name", (*Session).add},
		{[]string{"remove", "rm"}, "remove <sel>       remove games from the list: all, N, N-M or a name", (*Session).remove},
		{[]string{"list"}, "list               show the list", (*Session).showList},
		{[]string{"count"}, "count              count the view and the list", (*Session).count},
		{[]string{"clear"}, "clear              empty the list", (*Session).clear},
		{[]string{"save"}, "save <file>        write the list's names to a file", (*Session).save},
		{[]string{"load"}, "load <file>        add the games named in a file", (*Session).load},
		{[]string{"columns"}, "columns            show the columns and their operators", (*Session).showColumns},
		{[]string{"help", "?"}, "help               show this help", (*Session).help},
	}
}

// ErrExit is returned by Exec for exit and quit.
var ErrExit = errors.New("exit")

// Exec runs one command line and returns its output. Errors are user
// mistakes worth showing; ErrExit ends the session.
func (s *Session) Exec(line string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	if strings.HasPrefix(line, "/") {
		return s.eval(line[1:])
	}

	verb, arg, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	arg = strings.TrimSpace(arg)

	if verb == "exit" || verb == "quit" {
		return "", ErrExit
	}

	for _, c := range commands {
		for _, name := range c.names {
			if name == verb {
				log.Debugf("console exec: verb=%s, arg=%q", verb, arg)
				return c.run(s, arg)
			}
		}
	}
	return "", fmt.Errorf("unknown command: %s (try help)", verb)
}

func (s *Session) render(games []game.Game, footer string) string {
	var b strings.Builder
	opts := s.opts
	opts.Footer = footer
	if err := output.Render(&b, games, s.attrs, opts); err != nil {
		return err.Error()
	}
	return strings.TrimRight(b.String(), "\n")
}

// refresh recomputes the view with the current sort.
func (s *Session) refresh() error {
	view, err := s.planner.View(s.sortOn, s.ascending)
	if err != nil {
		return err
	}
	s.view = view
	return nil
}

func (s *Session) currentView() []game.Game {
	if s.view == nil {
		if err := s.refresh(); err != nil {
			log.WithError(err).Errorf("view refresh failed")
		}
	}
	return s.view
}

func (s *Session) showView() string {
	view := s.currentView()
	summary := fmt.Sprintf("%d of %d games", len(view), s.planner.Total())
	if len(view) == 0 {
		return summary
	}
	return s.render(view, summary)
}

func (s *Session) filter(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("usage: filter <expr>")
	}
	view, err := s.planner.FilterSorted(arg, s.sortOn, s.ascending)
	if err != nil {
		return "", err
	}
	s.view = view
	return s.showView(), nil
}

func (s *Session) sort(arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return "", errors.New("usage: sort <col> [asc|desc]")
	}

	ascending := true
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "asc":
		case "desc":
			ascending = false
		default:
			return "", fmt.Errorf("sort direction must be asc or desc: %s", fields[1])
		}
	}

	view, err := s.planner.View(fields[0], ascending)
	if err != nil {
		return "", err
	}
	s.sortOn, s.ascending, s.view = fields[0], ascending, view
	return s.showView(), nil
}

func (s *Session) reset(string) (string, error) {
	s.planner.Reset()
	if err := s.refresh(); err != nil {
		return "", err
	}
	return s.showView(), nil
}

func (s *Session) show(string) (string, error) {
	return s.showView(), nil
}

func (s *Session) add(arg string) (string, error) {
	before := s.list.Count()
	if err := s.list.AddToList(arg, s.currentView()); err != nil {
		return "", err
	}
	return fmt.Sprintf("added %d, list has %d games", s.list.Count()-before, s.list.Count()), nil
}

func (s *Session) remove(arg string) (string, error) {
	before := s.list.Count()
	if err := s.list.RemoveFromList(arg); err != nil {
		return "", err
	}
	return fmt.Sprintf("removed %d, list has %d games", before-s.list.Count(), s.list.Count()), nil
}

func (s *Session) showList(string) (string, error) {
	games := s.list.Games()
	summary := fmt.Sprintf("%d games in list", len(games))
	if len(games) == 0 {
		return summary, nil
	}
	return s.render(games, summary), nil
}

func (s *Session) count(string) (string, error) {
	return fmt.Sprintf("view: %d of %d, list: %d", s.planner.Count(), s.planner.Total(), s.list.Count()), nil
}

func (s *Session) clear(string) (string, error) {
	s.list.Clear()
	return "list cleared", nil
}

func (s *Session) save(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("usage: save <file>")
	}
	if err := s.list.Save(arg); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %d games to %s", s.list.Count(), arg), nil
}

func (s *Session) load(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("usage: load <file>")
	}
	before := s.list.Count()
	if err := s.list.Load(arg, s.planner.All()); err != nil {
		return "", err
	}
	return fmt.Sprintf("loaded %d, list has %d games", s.list.Count()-before, s.list.Count()), nil
}

func (s *Session) showColumns(string) (string, error) {
	var b strings.Builder
	output.DumpColumns(&b, s.columns)
	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *Session) help(string) (string, error) {
	lines := []string{"Commands:"}
	for _, c := range commands {
		lines = append(lines, "  "+c.usage)
	}
	lines = append(lines,
		"  /<expr>            evaluate an expression over view, list, count and total,",
		"                     e.g. /length(view) or /max(view[*].rating...)",
		"  exit               leave the console",
		"",
		"Operators: == != ~= >= <= > <  Clauses are separated by commas and all must match.",
	)
	return strings.Join(lines, "\n"), nil
}
