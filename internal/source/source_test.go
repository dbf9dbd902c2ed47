// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/bgplan/internal/game"
)

// fakeGetter serves a fixed set of S3 objects and counts requests.
type fakeGetter struct {
	objects map[string][]byte
	calls   int
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.calls++
	data, ok := f.objects[awsv2.ToString(in.Bucket)+"/"+awsv2.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func names(games []game.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

func TestLoadCSV(t *testing.T) {
	games, err := Load(context.Background(), filepath.Join("testdata", "games.csv"), game.NewRegistry())
	require.NoError(t, err)
	require.Len(t, games, 8)

	assert.Equal(t, game.Game{
		Name: "Chess", ID: 7, MinPlayers: 2, MaxPlayers: 2, MinPlayTime: 10, MaxPlayTime: 20,
		Difficulty: 10.0, Rank: 700, Rating: 10.0, Year: 2006,
	}, games[1])
	assert.Equal(t, "Tucano", games[7].Name)
}

func TestLoadCSVSkipsBadRows(t *testing.T) {
	games, err := Load(context.Background(), filepath.Join("testdata", "bad_rows.csv"), game.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Quoted, Name", "Short"}, names(games))
	assert.Equal(t, 4, games[1].MinPlayers)
	assert.Zero(t, games[1].Rating)
}

func TestLoadJSON(t *testing.T) {
	games, err := Load(context.Background(), filepath.Join("testdata", "games.json"), game.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Chess", "Nameless"}, names(games))

	assert.Equal(t, game.Game{
		Name: "Chess", ID: 7, MinPlayers: 2, MaxPlayers: 2, MinPlayTime: 10, MaxPlayTime: 20,
		Difficulty: 10.0, Rank: 700, Rating: 10.0, Year: 2006,
	}, games[1])
}

func TestLoadWrappedJSON(t *testing.T) {
	games, err := Load(context.Background(), filepath.Join("testdata", "wrapped.json"), game.NewRegistry())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 20, games[0].MaxPlayers)
	assert.Equal(t, 8.0, games[0].Rating)
}

func TestLoadJSONPath(t *testing.T) {
	src := filepath.Join("testdata", "nested.json")

	games, err := Load(context.Background(), src, game.NewRegistry(), WithJSONPath("export.pages[1].items"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Go Fish"}, names(games))
	assert.Equal(t, 200, games[1].Rank)

	_, err = Load(context.Background(), src, game.NewRegistry(), WithJSONPath("export.missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no games array at json path "export.missing"`)

	// Without a path the document must be an array or carry "games".
	_, err = Load(context.Background(), src, game.NewRegistry())
	assert.Error(t, err)
}

func TestLoadStdin(t *testing.T) {
	in := strings.NewReader(`[{"name":"Go","rating":7.5}]`)
	games, err := Load(context.Background(), Stdin, game.NewRegistry(), WithStdin(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, names(games))

	in = strings.NewReader("name,rating\nChess,10\n")
	games, err = Load(context.Background(), Stdin, game.NewRegistry(), WithStdin(in))
	require.NoError(t, err)
	assert.Equal(t, 10.0, games[0].Rating)
}

func TestLoadNonFiniteDecimals(t *testing.T) {
	in := strings.NewReader("name,rating\nGo,NaN\nChess,9.5\nTucano,-Inf\n")
	games, err := Load(context.Background(), Stdin, game.NewRegistry(), WithStdin(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess"}, names(games))

	in = strings.NewReader(`[{"name":"Go","difficulty":"NaN"},{"name":"Chess","difficulty":3}]`)
	games, err = Load(context.Background(), Stdin, game.NewRegistry(), WithStdin(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess"}, names(games))

	c, ok := game.NewRegistry().Resolve("rating")
	require.True(t, ok)
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-inf", "infinity"} {
		_, err := parseValue(c, raw)
		assert.ErrorContains(t, err, "not a finite number", raw)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	columns := game.NewRegistry()

	_, err := Load(ctx, "", columns)
	assert.Error(t, err)

	_, err = Load(ctx, filepath.Join(t.TempDir(), "missing.csv"), columns)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(ctx, Stdin, columns, WithStdin(strings.NewReader("rating,rank\n1,2\n")))
	assert.ErrorIs(t, err, ErrNoNameColumn)

	_, err = Load(ctx, Stdin, columns, WithStdin(strings.NewReader(`{"games": 3}`)))
	assert.ErrorContains(t, err, "games")

	_, err = Load(ctx, Stdin, columns, WithStdin(strings.NewReader(`[{"name":`)), WithFormat(FormatJSON))
	assert.ErrorContains(t, err, "invalid json")

	_, err = Load(ctx, "s3://bucket-only", columns, WithObjectGetter(&fakeGetter{}))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	games, err := Load(context.Background(), Stdin, game.NewRegistry(), WithStdin(strings.NewReader("")), WithFormat(FormatCSV))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestLoadS3Cached(t *testing.T) {
	t.Setenv("BGPLAN_CACHE_DIR", t.TempDir())
	t.Setenv("BGPLAN_CACHE", "")

	csv, err := os.ReadFile(filepath.Join("testdata", "games.csv"))
	require.NoError(t, err)
	getter := &fakeGetter{objects: map[string][]byte{"games/2026/collection.csv": csv}}

	for range 2 {
		games, err := Load(context.Background(), "s3://games/2026/collection.csv", game.NewRegistry(), WithObjectGetter(getter))
		require.NoError(t, err)
		assert.Len(t, games, 8)
	}
	assert.Equal(t, 1, getter.calls, "second load is served from cache")

	t.Setenv("BGPLAN_CACHE", "0")
	_, err = Load(context.Background(), "s3://games/2026/collection.csv", game.NewRegistry(), WithObjectGetter(getter))
	require.NoError(t, err)
	assert.Equal(t, 2, getter.calls)
}

func TestLoadS3Missing(t *testing.T) {
	t.Setenv("BGPLAN_CACHE", "0")

	_, err := Load(context.Background(), "s3://games/none.csv", game.NewRegistry(), WithObjectGetter(&fakeGetter{}))
	assert.ErrorContains(t, err, "failed to get S3 object")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		src  string
		data string
		want Format
	}{
		{"games.json", "name\n", FormatJSON},
		{"GAMES.CSV", "[", FormatCSV},
		{"-", "  [ ]", FormatJSON},
		{"-", "{}", FormatJSON},
		{"-", "name,id", FormatCSV},
		{"s3://b/collection", "", FormatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.src+"/"+tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFormat(tt.src, []byte(tt.data)))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, "auto", f.String())

	f, err = ParseFormat("auto")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
