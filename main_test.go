// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeLookup(sets map[string][]string) func(string, ...[]string) ([]string, error) {
	return func(key string, _ ...[]string) ([]string, error) {
		if v, ok := sets[key]; ok {
			return v, nil
		}
		return nil, errors.New("config key not found")
	}
}

func TestProcessSetOnly(t *testing.T) {
	sets := map[string][]string{
		"query.party": {"-f minPlayers>=6", "--sort rating --desc"},
		"list.quick":  {"-f maxTime<=30"},
	}

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"bgplan", "query", "--titles"},
			expected: []string{"bgplan", "query", "--titles"},
		},
		{
			name:     "too short",
			args:     []string{"bgplan", "query"},
			expected: []string{"bgplan", "query"},
		},
		{
			name:     "set expanded in place",
			args:     []string{"bgplan", "query", "@party", "-o", "names"},
			expected: []string{"bgplan", "query", "-f", "minPlayers>=6", "--sort", "rating", "--desc", "-o", "names"},
		},
		{
			name:     "set after flags",
			args:     []string{"bgplan", "list", "--titles", "@quick"},
			expected: []string{"bgplan", "list", "--titles", "-f", "maxTime<=30"},
		},
		{
			name:     "set is namespaced by command",
			args:     []string{"bgplan", "list", "@party"},
			expected: []string{"bgplan", "list"},
		},
		{
			name:     "bare at sign is left alone",
			args:     []string{"bgplan", "query", "@"},
			expected: []string{"bgplan", "query", "@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args, fakeLookup(sets)))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"bgplan", "--help"}, handleNakedCommand([]string{"bgplan"}))
	assert.Equal(t, []string{"bgplan", "query"}, handleNakedCommand([]string{"bgplan", "query"}))
}

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"bgplan", "--version"}))
	assert.True(t, handleVersion([]string{"bgplan", "-v"}))
	assert.False(t, handleVersion([]string{"bgplan", "query"}))
}
