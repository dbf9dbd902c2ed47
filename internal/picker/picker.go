// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/bgplan/internal/game"
)

// ErrCanceled is returned when the picker is quit without confirming.
var ErrCanceled = errors.New("selection canceled")

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Done   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
	All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/none")),
	Done:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#af87ff")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	title    string
	items    []game.Game
	cursor   int
	selected map[int]bool
	done     bool
	canceled bool
}

func newModel(title string, items []game.Game) model {
	return model{title: title, items: items, selected: map[int]bool{}}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.Quit):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(k, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(k, keys.Toggle):
		if len(m.items) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(k, keys.All):
		all := len(m.chosen()) < len(m.items)
		for i := range m.items {
			m.selected[i] = all
		}
	case key.Matches(k, keys.Done):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// chosen returns the selected rows as ascending 1-based positions.
func (m model) chosen() []int {
	var out []int
	for i, on := range m.selected {
		if on {
			out = append(out, i+1)
		}
	}
	slices.Sort(out)
	return out
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.title)
	for i, g := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}
		mark := " "
		if m.selected[i] {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %3d  %-30s %4d  %d-%d players  %.1f\n",
			cursor, mark, i+1, g.Name, g.Year, g.MinPlayers, g.MaxPlayers, g.Rating)
	}

	help := []string{}
	for _, kb := range []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.All, keys.Done, keys.Quit} {
		h := kb.Help()
		help = append(help, h.Key+": "+h.Desc)
	}
	fmt.Fprintf(&b, "\n%d selected  %s\n", len(m.chosen()), helpStyle.Render(strings.Join(help, ", ")))
	return b.String()
}

// Pick shows games and returns the 1-based positions the user selected.
func Pick(title string, games []game.Game, opts ...tea.ProgramOption) ([]int, error) {
	if len(games) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(newModel(title, games), opts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m := final.(model)
	if m.canceled || !m.done {
		return nil, ErrCanceled
	}
	return m.chosen(), nil
}

// Selections turns picked positions into gamelist selection strings.
func Selections(positions []int) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, strconv.Itoa(p))
	}
	return out
}
