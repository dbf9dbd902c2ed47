// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/staranto/bgplan/internal/attrs"
	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

// Formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatNames = "names"
)

// Formats lists every output format.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatNames}
}

// Options controls rendering.
type Options struct {
	Format  string
	Titles  bool
	Color   bool
	Padding int
	// Index adds a leading 1-based position column to text output, matching
	// the numbers accepted by list selections.
	Index  bool
	Header string
	Footer string
}

// FromCommand reads the output flags of cmd.
func FromCommand(cmd *cli.Command) Options {
	opts := Options{
		Format:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: cmd.Int("padding"),
		Index:   !cmd.Bool("no-index"),
	}
	if h, ok := cmd.Metadata["header"].(string); ok {
		opts.Header = h
	}
	if f, ok := cmd.Metadata["footer"].(string); ok {
		opts.Footer = f
	}
	return opts
}

// Render writes games to w in the requested format. If w is nil, os.Stdout
// is used.
func Render(w io.Writer, games []game.Game, al *attrs.AttrList, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case FormatJSON:
		out, err := json.Marshal(records(games, al))
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case FormatYAML:
		out, err := yaml.Marshal(orderedRecords(games, al))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(out)
		return err

	case FormatNames:
		for _, g := range games {
			if _, err := fmt.Fprintln(w, g.Name); err != nil {
				return err
			}
		}
		return nil

	case FormatText, "":
		TableWriter(w, games, al, opts)
		return nil

	default:
		return fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

// value is the structured form of one cell. Transformed columns carry their
// rendered text; others keep their native type.
func value(a attrs.Attr, g game.Game) interface{} {
	v := a.Column.Value(g)
	if a.TransformSpec != "" {
		return a.Transform(v)
	}
	return v.Any()
}

func records(games []game.Game, al *attrs.AttrList) []map[string]interface{} {
	visible := al.Visible()
	out := make([]map[string]interface{}, 0, len(games))
	for _, g := range games {
		rec := make(map[string]interface{}, len(visible))
		for _, a := range visible {
			rec[a.Title] = value(a, g)
		}
		out = append(out, rec)
	}
	return out
}

func orderedRecords(games []game.Game, al *attrs.AttrList) []yaml.MapSlice {
	visible := al.Visible()
	out := make([]yaml.MapSlice, 0, len(games))
	for _, g := range games {
		rec := make(yaml.MapSlice, 0, len(visible))
		for _, a := range visible {
			rec = append(rec, yaml.MapItem{Key: a.Title, Value: value(a, g)})
		}
		out = append(out, rec)
	}
	return out
}

// TableWriter renders games as a borderless table honoring the color, titles,
// padding and index options.
func TableWriter(w io.Writer, games []game.Game, al *attrs.AttrList, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	if len(games) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	rows := make([][]string, 0, len(games))
	for i, g := range games {
		row := al.Row(g)
		for c := range row {
			if row[c] == "" {
				row[c] = "-"
			}
		}
		if opts.Index {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	if opts.Header != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Header))
	}

	pad := opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		headers := al.Titles()
		if opts.Index {
			headers = append([]string{"#"}, headers...)
		}
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if opts.Footer != "" {
		fmt.Fprintln(w, headerStyle.Render(opts.Footer))
	}
	log.Debugf("table written: rows=%d", len(rows))
}

// getColors returns the configured table colors, falling back to defaults
// picked for the terminal's background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if c, err := config.GetString(key); err == nil {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#6b3fa0", "#af87ff")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#2e7d32", "#87d787")

	return
}
