// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package planner

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/sorter"
	"github.com/staranto/bgplan/internal/source"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testStep is one Filter call and the names expected back.
type testStep struct {
	Expr      string   `yaml:"expr"`
	WantNames []string `yaml:"wantNames"`
}

// testChainCase represents a single test case for TestFilterChain.
type testChainCase struct {
	Name  string     `yaml:"name"`
	Steps []testStep `yaml:"steps"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func testGames() []game.Game {
	return []game.Game{
		{Name: "17 days", ID: 6, MinPlayers: 1, MaxPlayers: 8, MinPlayTime: 70, MaxPlayTime: 70, Difficulty: 9.0, Rank: 600, Rating: 9.0, Year: 2005},
		{Name: "Chess", ID: 7, MinPlayers: 2, MaxPlayers: 2, MinPlayTime: 10, MaxPlayTime: 20, Difficulty: 10.0, Rank: 700, Rating: 10.0, Year: 2006},
		{Name: "Go", ID: 1, MinPlayers: 2, MaxPlayers: 5, MinPlayTime: 30, MaxPlayTime: 30, Difficulty: 8.0, Rank: 100, Rating: 7.5, Year: 2000},
		{Name: "Go Fish", ID: 2, MinPlayers: 2, MaxPlayers: 10, MinPlayTime: 20, MaxPlayTime: 120, Difficulty: 3.0, Rank: 200, Rating: 6.5, Year: 2001},
		{Name: "golang", ID: 4, MinPlayers: 2, MaxPlayers: 7, MinPlayTime: 50, MaxPlayTime: 55, Difficulty: 7.0, Rank: 400, Rating: 9.5, Year: 2003},
		{Name: "GoRami", ID: 3, MinPlayers: 6, MaxPlayers: 6, MinPlayTime: 40, MaxPlayTime: 42, Difficulty: 5.0, Rank: 300, Rating: 8.5, Year: 2002},
		{Name: "Monopoly", ID: 8, MinPlayers: 6, MaxPlayers: 10, MinPlayTime: 20, MaxPlayTime: 1000, Difficulty: 1.0, Rank: 800, Rating: 5.0, Year: 2007},
		{Name: "Tucano", ID: 5, MinPlayers: 10, MaxPlayers: 20, MinPlayTime: 60, MaxPlayTime: 90, Difficulty: 6.0, Rank: 500, Rating: 8.0, Year: 2004},
	}
}

func names(games []game.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func TestParseResetMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ResetMode
		wantErr bool
	}{
		{"", ResetFull, false},
		{"full", ResetFull, false},
		{" Empty ", ResetEmpty, false},
		{"partial", ResetFull, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseResetMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterChain(t *testing.T) {
	var cases []testChainCase
	require.NoError(t, loadTestData("chain.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p := New(testGames(), game.NewRegistry())
			for i, step := range tc.Steps {
				got := p.Filter(step.Expr)
				assert.Equal(t, len(step.WantNames), p.Count(), "step %d", i)
				if len(step.WantNames) == 0 {
					assert.Empty(t, got, "step %d", i)
					continue
				}
				assert.Equal(t, step.WantNames, names(got), "step %d: %q", i, step.Expr)
			}
		})
	}
}

func TestFilterMonotonic(t *testing.T) {
	exprs := []string{
		"maxPlayers >= 5",
		"bogus == 1",
		"minPlayTime <= 60",
		"name != chess",
		"rating > 7",
		"year < 2003",
	}

	p := New(testGames(), game.NewRegistry())
	all := game.NewSet(testGames()...)
	prev := p.Working()
	for _, expr := range exprs {
		p.Filter(expr)
		cur := p.Working()
		assert.True(t, cur.SubsetOf(prev), "after %q", expr)
		assert.True(t, cur.SubsetOf(all), "after %q", expr)
		prev = cur
	}
	assert.Equal(t, []string{"Go", "GoRami"}, names(prev.SortedByName()))
}

func TestFilterUnknownColumnUnchanged(t *testing.T) {
	p := New(testGames(), game.NewRegistry())
	p.Filter("name ~= go")
	before := p.Working()

	p.Filter("nonexistentCol == x")
	assert.Equal(t, before, p.Working())
}

func TestReset(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		p := New(testGames(), game.NewRegistry())
		p.Filter("name == Go")
		require.Equal(t, 1, p.Count())

		p.Reset()
		assert.Equal(t, p.Total(), p.Count())
		view, err := p.View("", true)
		require.NoError(t, err)
		assert.Equal(t, names(p.All()), names(view))
		assert.Equal(t, game.NewSet(testGames()...), p.Working())
	})

	t.Run("empty", func(t *testing.T) {
		p := New(testGames(), game.NewRegistry(), WithResetMode(ResetEmpty))
		p.Filter("name ~= go")
		require.Equal(t, 4, p.Count())

		p.Reset()
		assert.Zero(t, p.Count())
		assert.Equal(t, 8, p.Total())
		assert.Empty(t, p.Filter(""))
	})
}

func TestFilterSorted(t *testing.T) {
	p := New(testGames(), game.NewRegistry())

	got, err := p.FilterSorted("name ~= go", "rank", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "GoRami", "Go Fish", "Go"}, names(got))

	got, err = p.FilterSorted("", "Rating", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Fish", "Go", "GoRami", "golang"}, names(got))

	_, err = p.FilterSorted("minPlayers > 2", "bogus", true)
	require.ErrorIs(t, err, sorter.ErrUnknownColumn)
	assert.Equal(t, 1, p.Count(), "working set narrows even when the sort column is unknown")
}

func TestViewDoesNotNarrow(t *testing.T) {
	p := New(testGames(), game.NewRegistry())
	p.Filter("maxPlayers >= 10")

	first, err := p.View("year", false)
	require.NoError(t, err)
	second, err := p.View("year", false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Monopoly", "Tucano", "Go Fish"}, names(first))
	assert.Equal(t, 3, p.Count())
}

func TestFilterOverDecodedData(t *testing.T) {
	columns := game.NewRegistry()
	games, err := source.Decode([]byte("name,rating\nGo,NaN\nChess,9.5\nTucano,8\n"), source.FormatCSV, columns)
	require.NoError(t, err)

	p := New(games, columns)
	assert.Equal(t, []string{"Chess"}, names(p.Filter("name == Chess")))
	assert.Equal(t, 1, p.Count())
	assert.Equal(t, 2, p.Total())
}

func TestWithSorter(t *testing.T) {
	columns := game.NewRegistry()
	reg := sorter.NewRegistry(columns)
	p := New(testGames(), columns, WithSorter(reg))
	assert.Same(t, reg, p.sorter)

	got, err := p.FilterSorted("minPlayers >= 6", "rank", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"GoRami", "Tucano", "Monopoly"}, names(got))

	assert.NotNil(t, New(testGames(), columns).sorter)
}

func TestNewCollapsesDuplicates(t *testing.T) {
	games := append(testGames(), testGames()[0])
	p := New(games, game.NewRegistry())
	assert.Equal(t, 8, p.Total())
}
