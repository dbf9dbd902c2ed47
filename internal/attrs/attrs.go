// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

// Attr is one displayed column.
type Attr struct {
	Column *game.Column
	// Include is false for columns hidden with "!".
	Include bool
	// Title heads the column in text output and keys it in json/yaml.
	Title         string
	TransformSpec string
}

var (
	precisionRE = regexp.MustCompile(`\.(\d+)`)
	lengthRE    = regexp.MustCompile(`(?:^|[^.\d])(-?\d+)`)
)

// Transform renders v according to the attribute's transform spec.
func (a *Attr) Transform(v game.Value) string {
	spec := a.TransformSpec
	result := v.String()

	switch v.Kind {
	case game.KindInteger:
		switch {
		case strings.Contains(spec, "o"):
			result = humanize.Ordinal(int(v.Int))
		case strings.Contains(spec, "h"):
			result = humanize.Comma(v.Int)
		}
	case game.KindDecimal:
		digits := -1
		if m := precisionRE.FindAllStringSubmatch(spec, -1); len(m) > 0 {
			digits, _ = strconv.Atoi(m[len(m)-1][1])
		}
		switch {
		case strings.Contains(spec, "h") && digits >= 0:
			result = humanize.CommafWithDigits(v.Dec, digits)
		case strings.Contains(spec, "h"):
			result = humanize.Commaf(v.Dec)
		case digits >= 0:
			result = strconv.FormatFloat(v.Dec, 'f', digits, 64)
		}
	}

	// Last case letter wins.
	lastL := strings.LastIndexAny(spec, "lL")
	lastU := strings.LastIndexAny(spec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	if m := lengthRE.FindAllStringSubmatch(spec, -1); len(m) > 0 {
		n, _ := strconv.Atoi(m[len(m)-1][1])
		result = shorten(result, n)
	}

	log.Tracef("transform applied: spec=%s, result=%s", spec, result)
	return result
}

// shorten truncates s to n runes. A negative n keeps both ends and puts ".."
// in the middle.
func shorten(s string, n int) string {
	r := []rune(s)
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if len(r) <= abs || abs == 0 {
		return s
	}
	if n > 0 {
		return string(r[:n])
	}

	side := abs/2 - 1
	if side < 1 {
		return string(r[:abs])
	}
	return string(r[:side]) + ".." + string(r[len(r)-side:])
}

// AttrList is the ordered set of displayed columns. It satisfies the
// flag.Value shape so it can be filled straight from --attrs.
type AttrList struct {
	columns *game.Registry
	attrs   []Attr
}

// NewAttrList returns a list showing every column of the registry, titled by
// column name.
func NewAttrList(columns *game.Registry) *AttrList {
	l := &AttrList{columns: columns}
	for _, c := range columns.Columns() {
		l.attrs = append(l.attrs, Attr{Column: c, Include: true, Title: c.Name})
	}
	return l
}

// Set applies a spec. A plain list of columns replaces the defaults so only
// those columns show; specs that only hide columns or set "*" adjust the
// current list.
func (l *AttrList) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	const (
		keyIdx = iota
		titleIdx
		transformIdx
	)

	var (
		global   string
		replaced bool
		selected []Attr
	)

	for _, spec := range strings.Split(value, ",") {
		fields := strings.Split(spec, ":")
		key := strings.TrimSpace(fields[keyIdx])
		if key == "" {
			continue
		}

		transform := ""
		if len(fields) > transformIdx {
			transform = strings.TrimSpace(fields[transformIdx])
		}

		if key == "*" {
			global = transform
			continue
		}

		include := true
		if strings.HasPrefix(key, "!") {
			include = false
			key = key[1:]
		}

		c, ok := l.columns.Resolve(key)
		if !ok {
			return fmt.Errorf("unknown column in attrs: %s", key)
		}

		title := c.Name
		if len(fields) > titleIdx && strings.TrimSpace(fields[titleIdx]) != "" {
			title = strings.TrimSpace(fields[titleIdx])
		}

		if !include {
			l.hide(c)
			continue
		}

		replaced = true
		selected = append(selected, Attr{Column: c, Include: true, Title: title, TransformSpec: transform})
	}

	if replaced {
		// Hidden columns stay hidden when a list follows them.
		for _, a := range l.attrs {
			if !a.Include && !contains(selected, a.Column) {
				selected = append(selected, a)
			}
		}
		l.attrs = selected
	}

	if global != "" {
		for i := range l.attrs {
			l.attrs[i].TransformSpec = global + "," + l.attrs[i].TransformSpec
		}
	}

	log.Debugf("attrs set: %s", l)
	return nil
}

func (l *AttrList) hide(c *game.Column) {
	for i := range l.attrs {
		if l.attrs[i].Column == c {
			l.attrs[i].Include = false
			return
		}
	}
}

func contains(attrs []Attr, c *game.Column) bool {
	for _, a := range attrs {
		if a.Column == c {
			return true
		}
	}
	return false
}

// Visible returns the included attributes in display order.
func (l *AttrList) Visible() []Attr {
	out := make([]Attr, 0, len(l.attrs))
	for _, a := range l.attrs {
		if a.Include {
			out = append(out, a)
		}
	}
	return out
}

// Row renders g's visible columns.
func (l *AttrList) Row(g game.Game) []string {
	visible := l.Visible()
	row := make([]string, 0, len(visible))
	for i := range visible {
		row = append(row, visible[i].Transform(visible[i].Column.Value(g)))
	}
	return row
}

// Titles returns the visible column titles.
func (l *AttrList) Titles() []string {
	visible := l.Visible()
	titles := make([]string, 0, len(visible))
	for _, a := range visible {
		titles = append(titles, a.Title)
	}
	return titles
}

func (l *AttrList) String() string {
	parts := make([]string, 0, len(l.attrs))
	for _, a := range l.attrs {
		key := a.Column.Name
		if !a.Include {
			key = "!" + key
		}
		parts = append(parts, fmt.Sprintf("%s:%s:%s", key, a.Title, a.TransformSpec))
	}
	return strings.Join(parts, ",")
}

// Type names the flag value type.
func (l *AttrList) Type() string { return "list" }
