// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package gamelist

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/staranto/bgplan/internal/game"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testSelectionCase represents a single add or remove test case.
type testSelectionCase struct {
	Name      string   `yaml:"name"`
	Selection string   `yaml:"selection"`
	WantNames []string `yaml:"wantNames"`
	WantErr   string   `yaml:"wantErr"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

var (
	game1 = game.Game{Name: "17 days", ID: 6, MinPlayers: 1, MaxPlayers: 8, MinPlayTime: 70, MaxPlayTime: 70, Difficulty: 9.0, Rank: 600, Rating: 9.0, Year: 2005}
	game2 = game.Game{Name: "20 days", ID: 6, MinPlayers: 1, MaxPlayers: 8, MinPlayTime: 70, MaxPlayTime: 70, Difficulty: 9.0, Rank: 600, Rating: 9.0, Year: 2005}
)

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l)
	assert.Empty(t, l.Names())
	assert.Zero(t, l.Count())

	var zero List
	require.NoError(t, zero.AddToList("1", []game.Game{game1}))
	assert.Equal(t, []string{"17 days"}, zero.Names())
}

func TestAddToList(t *testing.T) {
	var cases []testSelectionCase
	require.NoError(t, loadTestData("add.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			l := New()
			err := l.AddToList(tc.Selection, []game.Game{game1, game2})
			if tc.WantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tc.WantErr)
				assert.ErrorIs(t, err, ErrInvalidSelection)
				assert.Zero(t, l.Count(), "failed selection must not change the list")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.WantNames, l.Names())
		})
	}
}

func TestRemoveFromList(t *testing.T) {
	var cases []testSelectionCase
	require.NoError(t, loadTestData("remove.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			l := New()
			require.NoError(t, l.AddToList("all", []game.Game{game1, game2}))

			err := l.RemoveFromList(tc.Selection)
			if tc.WantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tc.WantErr)
				assert.ErrorIs(t, err, ErrInvalidSelection)
				assert.Equal(t, 2, l.Count(), "failed selection must not change the list")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.WantNames), l.Count())
			if len(tc.WantNames) > 0 {
				assert.Equal(t, tc.WantNames, l.Names())
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	l := New()
	for _, sel := range []string{"", "   "} {
		assert.ErrorIs(t, l.AddToList(sel, []game.Game{game1}), ErrEmptyInput)
		assert.ErrorIs(t, l.RemoveFromList(sel), ErrEmptyInput)
	}
}

func TestAddAllOrdersByName(t *testing.T) {
	l := New()
	require.NoError(t, l.AddToList("all", []game.Game{game2, game1}))
	assert.Equal(t, []string{"17 days", "20 days"}, l.Names())
}

func TestRemoveIndexUsesListOrder(t *testing.T) {
	// The reference puts "20 days" first; the list does not.
	l := New()
	require.NoError(t, l.AddToList("all", []game.Game{game2, game1}))
	require.NoError(t, l.RemoveFromList("1"))
	assert.Equal(t, []string{"20 days"}, l.Names())
}

func TestAddIsIdempotent(t *testing.T) {
	l := New()
	require.NoError(t, l.AddToList("1", []game.Game{game1, game2}))
	require.NoError(t, l.AddToList("17 days", []game.Game{game1, game2}))
	require.NoError(t, l.AddToList("1-1", []game.Game{game1, game2}))
	assert.Equal(t, 1, l.Count())
	assert.True(t, l.Contains(game1))
	assert.False(t, l.Contains(game2))
}

func TestAmbiguousName(t *testing.T) {
	twin := game1
	twin.ID = 99

	l := New()
	err := l.AddToList("17 days", []game.Game{game1, twin})
	require.ErrorIs(t, err, ErrInvalidSelection)

	var selErr *SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "17 days", selErr.Text)
	assert.Zero(t, l.Count())
}

func TestClear(t *testing.T) {
	l := New()
	require.NoError(t, l.AddToList("all", []game.Game{game1, game2}))
	l.Clear()
	assert.Zero(t, l.Count())
	assert.Empty(t, l.Names())
}

func TestWriteTo(t *testing.T) {
	l := New()
	require.NoError(t, l.AddToList("all", []game.Game{game2, game1}))

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "17 days\n20 days\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o600))

	l := New()
	require.NoError(t, l.AddToList("all", []game.Game{game2, game1}))
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "17 days\n20 days\n", string(data))

	loaded := New()
	require.NoError(t, loaded.Load(path, []game.Game{game1, game2}))
	assert.Equal(t, l.Names(), loaded.Names())
}

func TestLoadFromAllOrNothing(t *testing.T) {
	l := New()
	err := l.LoadFrom(strings.NewReader("17 days\n\nrandom\n"), []game.Game{game1, game2})
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Zero(t, l.Count())

	require.NoError(t, l.LoadFrom(strings.NewReader("  20 DAYS \n\n"), []game.Game{game1, game2}))
	assert.Equal(t, []string{"20 days"}, l.Names())
}

func TestLoadMissingFile(t *testing.T) {
	l := New()
	err := l.Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
