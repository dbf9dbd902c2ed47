// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/staranto/bgplan/internal/game"
)

var testGames = []game.Game{
	{Name: "Chess", MinPlayers: 2, MaxPlayers: 2, Rating: 10, Year: 2006},
	{Name: "Go", MinPlayers: 2, MaxPlayers: 5, Rating: 7.5, Year: 2000},
	{Name: "Tucano", MinPlayers: 10, MaxPlayers: 20, Rating: 8, Year: 2004},
}

func press(m model, keys ...tea.KeyMsg) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(model)
	}
	return m, cmd
}

var (
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	toggle = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	all   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
)

func TestToggleAndConfirm(t *testing.T) {
	m := newModel("Pick games", testGames)

	m, _ = press(m, down, down, toggle, up, up, up, toggle)
	assert.Equal(t, []int{1, 3}, m.chosen())
	assert.Contains(t, m.View(), "2 selected")

	m, _ = press(m, toggle)
	assert.Equal(t, []int{3}, m.chosen())

	m, cmd := press(m, enter)
	assert.True(t, m.done)
	assert.False(t, m.canceled)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCursorBounds(t *testing.T) {
	m := newModel("Pick games", testGames)
	m, _ = press(m, up)
	assert.Equal(t, 0, m.cursor)
	m, _ = press(m, down, down, down, down)
	assert.Equal(t, 2, m.cursor)
}

func TestSelectAllToggles(t *testing.T) {
	m := newModel("Pick games", testGames)
	m, _ = press(m, toggle, all)
	assert.Equal(t, []int{1, 2, 3}, m.chosen())
	m, _ = press(m, all)
	assert.Empty(t, m.chosen())
}

func TestQuitCancels(t *testing.T) {
	m := newModel("Pick games", testGames)
	m, cmd := press(m, toggle, esc)
	assert.True(t, m.canceled)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := newModel("Pick games", testGames)
	v := m.View()
	assert.Contains(t, v, "Pick games")
	assert.Contains(t, v, "Tucano")
	assert.Contains(t, v, "10-20 players")
	assert.Contains(t, v, "enter: done")
}

func TestPickEmpty(t *testing.T) {
	got, err := Pick("Pick games", nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSelections(t *testing.T) {
	assert.Equal(t, []string{"1", "3"}, Selections([]int{1, 3}))
	assert.Empty(t, Selections(nil))
}
