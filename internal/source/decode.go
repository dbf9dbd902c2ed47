// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/staranto/bgplan/internal/driller"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

// Format is a collection encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "auto":
		return FormatAuto, nil
	case FormatAuto, FormatCSV, FormatJSON:
		return f, nil
	default:
		return FormatAuto, fmt.Errorf("unknown source format: %s", s)
	}
}

func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// ErrNoNameColumn is returned when a CSV header has no name column.
var ErrNoNameColumn = errors.New("no name column in header")

// detectFormat goes by extension, then by the first non-space byte.
func detectFormat(src string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatCSV
}

// Decode turns data into games.
func Decode(data []byte, format Format, columns *game.Registry) ([]game.Game, error) {
	return decode(data, format, columns, "")
}

func decode(data []byte, format Format, columns *game.Registry, jsonPath string) ([]game.Game, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data, columns, jsonPath)
	default:
		return decodeCSV(data, columns)
	}
}

// parseValue converts raw text into a Value of the column's kind. Blank
// numeric fields are zero.
func parseValue(c *game.Column, raw string) (game.Value, error) {
	raw = strings.TrimSpace(raw)
	switch c.Kind {
	case game.KindInteger:
		if raw == "" {
			return game.IntValue(0), nil
		}
		i, err := strconv.Atoi(raw)
		if err != nil {
			return game.Value{}, fmt.Errorf("%s: %q is not an integer", c.Name, raw)
		}
		return game.IntValue(i), nil
	case game.KindDecimal:
		if raw == "" {
			return game.DecValue(0), nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return game.Value{}, fmt.Errorf("%s: %q is not a number", c.Name, raw)
		}
		// Games are set keys and NaN never equals itself.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return game.Value{}, fmt.Errorf("%s: %q is not a finite number", c.Name, raw)
		}
		return game.DecValue(f), nil
	default:
		return game.TextValue(raw), nil
	}
}

func decodeCSV(data []byte, columns *game.Registry) ([]game.Game, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Header position to column; nil for headers that resolve to nothing.
	mapping := make([]*game.Column, len(header))
	hasName := false
	for i, h := range header {
		c, ok := columns.Resolve(strings.TrimPrefix(h, "\ufeff"))
		if !ok {
			log.Debugf("csv header ignored: %s", h)
			continue
		}
		mapping[i] = c
		hasName = hasName || c == columns.Name()
	}
	if !hasName {
		return nil, ErrNoNameColumn
	}

	var games []game.Game
	line := 1
	for {
		record, err := r.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("csv line %d skipped: %v", line, err)
			continue
		}

		g, err := decodeRecord(record, mapping)
		if err != nil {
			log.Warnf("csv line %d skipped: %v", line, err)
			continue
		}
		games = append(games, g)
	}

	return games, nil
}

func decodeRecord(record []string, mapping []*game.Column) (game.Game, error) {
	var g game.Game
	for i, raw := range record {
		if i >= len(mapping) || mapping[i] == nil {
			continue
		}
		v, err := parseValue(mapping[i], raw)
		if err != nil {
			return game.Game{}, err
		}
		mapping[i].Set(&g, v)
	}

	if g.Name == "" {
		return game.Game{}, errors.New("missing name")
	}
	return g, nil
}

func decodeJSON(data []byte, columns *game.Registry, path string) ([]game.Game, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}

	doc := gjson.ParseBytes(data)
	list := doc
	if path != "" {
		list = driller.Drill(doc, path)
		if !list.IsArray() {
			return nil, fmt.Errorf("no games array at json path %q", path)
		}
	} else if !doc.IsArray() {
		list = doc.Get("games")
		if !list.IsArray() {
			return nil, errors.New(`json must be an array or an object with a "games" array`)
		}
	}

	var games []game.Game
	for i, item := range list.Array() {
		g, err := decodeObject(item, columns)
		if err != nil {
			log.Warnf("json game %d skipped: %v", i, err)
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

func decodeObject(item gjson.Result, columns *game.Registry) (game.Game, error) {
	if !item.IsObject() {
		return game.Game{}, fmt.Errorf("not an object: %s", item.Raw)
	}

	var (
		g       game.Game
		decoErr error
	)
	item.ForEach(func(key, value gjson.Result) bool {
		c, ok := columns.Resolve(key.String())
		if !ok {
			return true
		}
		v, err := parseValue(c, value.String())
		if err != nil {
			decoErr = err
			return false
		}
		c.Set(&g, v)
		return true
	})
	if decoErr != nil {
		return game.Game{}, decoErr
	}

	if g.Name == "" {
		return game.Game{}, errors.New("missing name")
	}
	return g, nil
}
