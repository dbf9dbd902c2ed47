// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staranto/bgplan/internal/log"
)

// maxHistory bounds the saved history file.
const maxHistory = 1000

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#af87ff"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

// exchange is one command and what it printed.
type exchange struct {
	input  string
	output string
}

// model is the Bubble Tea model wrapping a Session.
type model struct {
	session     *Session
	input       textinput.Model
	history     []string
	histIndex   int
	historyFile string
	banner      string
	exchanges   []exchange
}

func newModel(s *Session, historyFile string) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	return model{
		session:     s,
		input:       ti,
		history:     loadHistory(historyFile),
		histIndex:   -1,
		historyFile: historyFile,
		banner: fmt.Sprintf("%d games loaded. Type 'help' for commands, 'exit' or Ctrl+C to quit.",
			s.planner.Total()),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m.submit()

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	entry := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.histIndex = -1
	if entry == "" {
		return m, nil
	}

	m.history = append(m.history, entry)
	saveHistory(m.historyFile, m.history)

	out, err := m.session.Exec(entry)
	if errors.Is(err, ErrExit) {
		return m, tea.Quit
	}
	if err != nil {
		out = errorStyle.Render("error: " + err.Error())
	}

	m.exchanges = append(m.exchanges, exchange{input: entry, output: out})
	return m, nil
}

func (m model) View() string {
	prompt := promptStyle.Render("bgplan> ")

	lines := []string{m.banner}
	for _, x := range m.exchanges {
		lines = append(lines, prompt+x.input)
		if x.output != "" {
			lines = append(lines, x.output)
		}
	}
	lines = append(lines, prompt+m.input.View())

	return strings.Join(lines, "\n")
}

// HistoryFile is where console history is kept: BGPLAN_HISTORY when set,
// otherwise ~/.bgplan_history.
func HistoryFile() string {
	if f := os.Getenv("BGPLAN_HISTORY"); f != "" {
		return f
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bgplan_history"
	}
	return filepath.Join(home, ".bgplan_history")
}

func loadHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			history = append(history, line)
		}
	}
	return history
}

func saveHistory(filename string, history []string) {
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Debugf("history not saved: %v", err)
		return
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range history[start:] {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		log.Debugf("history not saved: %v", err)
	}
}

// Run starts the interactive console over s.
func Run(s *Session, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(newModel(s, HistoryFile()), opts...)
	_, err := p.Run()
	return err
}
