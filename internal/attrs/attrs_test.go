// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/staranto/bgplan/internal/game"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testTransformCase represents a single test case for TestAttr_Transform.
type testTransformCase struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Spec  string `yaml:"spec"`
	Input string `yaml:"input"`
	Want  string `yaml:"want"`
}

// testSetCase represents a single test case for TestAttrList_Set. Steps, when
// present, are applied in order instead of Value.
type testSetCase struct {
	Name       string   `yaml:"name"`
	Value      string   `yaml:"value"`
	Steps      []string `yaml:"steps"`
	WantTitles []string `yaml:"wantTitles"`
	WantString string   `yaml:"wantString"`
	WantErr    bool     `yaml:"wantErr"`
}

func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func toValue(t *testing.T, kind, input string) game.Value {
	t.Helper()
	switch kind {
	case "integer":
		i, err := strconv.Atoi(input)
		require.NoError(t, err)
		return game.IntValue(i)
	case "decimal":
		f, err := strconv.ParseFloat(input, 64)
		require.NoError(t, err)
		return game.DecValue(f)
	default:
		return game.TextValue(input)
	}
}

func TestAttr_Transform(t *testing.T) {
	var cases []testTransformCase
	require.NoError(t, loadTestData("transform.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			a := Attr{Include: true, TransformSpec: tc.Spec}
			assert.Equal(t, tc.Want, a.Transform(toValue(t, tc.Kind, tc.Input)))
		})
	}
}

func TestAttrList_Set(t *testing.T) {
	var cases []testSetCase
	require.NoError(t, loadTestData("set.yaml", &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			l := NewAttrList(game.NewRegistry())

			steps := tc.Steps
			if len(steps) == 0 {
				steps = []string{tc.Value}
			}

			var err error
			for _, step := range steps {
				if err = l.Set(step); err != nil {
					break
				}
			}

			if tc.WantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.WantTitles, l.Titles())
			if tc.WantString != "" {
				assert.Equal(t, tc.WantString, l.String())
			}
		})
	}
}

func TestAttrList_Row(t *testing.T) {
	l := NewAttrList(game.NewRegistry())
	require.NoError(t, l.Set("name::u,rank::o,rating::.2,maxTime::h"))

	g := game.Game{Name: "Monopoly", Rank: 800, Rating: 5.0, MaxPlayTime: 1000}
	assert.Equal(t, []string{"MONOPOLY", "800th", "5.00", "1,000"}, l.Row(g))
	assert.Equal(t, []string{"name", "rank", "rating", "maxTime"}, l.Titles())
}

func TestAttrList_Type(t *testing.T) {
	assert.Equal(t, "list", NewAttrList(game.NewRegistry()).Type())
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "Go", shorten("Go", 5))
	assert.Equal(t, "Go", shorten("Go", 0))
	assert.Equal(t, "Tuc", shorten("Tucano", -3))
	assert.Equal(t, "Mon..oly", shorten("Monopoly Deluxe oly", -8))
	assert.Equal(t, "日本", shorten("日本語", 2))
}
