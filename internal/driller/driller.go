// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segment = regexp.MustCompile(`^([^.\[\]]+)(\[(\d+|\*)?\])?$`)

// Drill navigates doc along a dot path such as "export.items[0].games". A
// segment may carry an array index; "[]" or "[*]" keeps the whole array. A
// one-element array met before the last segment is unwrapped when no index is
// given. An unmatched path
// returns a result that does not exist.
func Drill(doc gjson.Result, path string) gjson.Result {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return doc
	}

	parts := strings.Split(path, ".")
	current := doc
	for n, p := range parts {
		matches := segment.FindStringSubmatch(p)
		if matches == nil {
			return gjson.Result{}
		}

		val := current.Get(gjson.Escape(matches[1]))
		if !val.Exists() {
			return gjson.Result{}
		}

		if val.IsArray() {
			arr := val.Array()
			switch idx := matches[3]; {
			case idx == "*" || (idx == "" && matches[2] != ""):
				// Keep the whole array.
			case idx == "":
				if len(arr) == 1 && n < len(parts)-1 {
					val = arr[0]
				}
			default:
				i, err := strconv.Atoi(idx)
				if err != nil || i >= len(arr) {
					return gjson.Result{}
				}
				val = arr[i]
			}
		} else if matches[2] != "" {
			return gjson.Result{}
		}

		current = val
	}

	return current
}

// DrillBytes parses data and drills into it.
func DrillBytes(data []byte, path string) gjson.Result {
	return Drill(gjson.ParseBytes(data), path)
}
