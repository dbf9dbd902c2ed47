// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/staranto/bgplan/internal/filters"
	"github.com/staranto/bgplan/internal/game"
)

// DumpColumns writes the columns usable in filters, sorts and --attrs, along
// with the operators each accepts.
func DumpColumns(w io.Writer, columns *game.Registry) {
	if w == nil {
		w = os.Stdout
	}

	rows := make([][]string, 0, len(columns.Columns()))
	for _, c := range columns.Columns() {
		var ops []string
		for _, op := range filters.Operators() {
			if op.AppliesTo(c.Kind) {
				ops = append(ops, op.Symbol())
			}
		}
		aliases := strings.Join(c.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		rows = append(rows, []string{c.Name, c.Kind.String(), strings.Join(ops, " "), aliases})
	}

	header := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			if row == table.HeaderRow {
				style = header
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("COLUMN", "KIND", "OPERATORS", "ALIASES").
		Rows(rows...)

	fmt.Fprintln(w, t)
}
