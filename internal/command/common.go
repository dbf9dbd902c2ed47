// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/bgplan/internal/attrs"
	awsx "github.com/staranto/bgplan/internal/aws"
	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/meta"
	"github.com/staranto/bgplan/internal/planner"
	"github.com/staranto/bgplan/internal/sorter"
	"github.com/staranto/bgplan/internal/source"
)

// ErrNoSource is returned when no collection is named and stdin is a terminal.
var ErrNoSource = errors.New("no game source: use --source or set source in " + config.FileName)

// BuildAttrs constructs an AttrList over the registry's columns, then applies
// --attrs on top.
func BuildAttrs(cmd *cli.Command, columns *game.Registry) (*attrs.AttrList, error) {
	al := attrs.NewAttrList(columns)
	if spec := cmd.String("attrs"); spec != "" {
		if err := al.Set(spec); err != nil {
			return nil, fmt.Errorf("invalid --attrs: %w", err)
		}
	}
	return al, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// columnsOf returns the registry from the command's meta, or a fresh one.
func columnsOf(cmd *cli.Command) *game.Registry {
	if m := GetMeta(cmd); m.Columns != nil {
		return m.Columns
	}
	return game.NewRegistry()
}

// stdout is where command output goes; tests swap the root writer.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// LoadCollection reads the games named by --source. With no source and piped
// stdin, stdin is read.
func LoadCollection(ctx context.Context, cmd *cli.Command) ([]game.Game, error) {
	src := cmd.String("source")
	in := stdin(cmd)
	if src == "" {
		if isTerminal(in) {
			return nil, ErrNoSource
		}
		src = source.Stdin
	}

	format, err := source.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	clean, err := config.GetInt("cache.clean", 0)
	if err != nil {
		log.WithError(err).Warnf("ignoring cache.clean")
	}

	var awsOpts []awsx.Option
	if p := cmd.String("profile"); p != "" {
		awsOpts = append(awsOpts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		awsOpts = append(awsOpts, awsx.WithRegion(r))
	}
	if e := cmd.String("endpoint"); e != "" {
		awsOpts = append(awsOpts, awsx.WithEndpoint(e))
	}

	games, err := source.Load(ctx, src, columnsOf(cmd),
		source.WithFormat(format),
		source.WithStdin(in),
		source.WithCacheClean(clean),
		source.WithJSONPath(cmd.String("json-path")),
		source.WithAWS(awsOpts...),
	)
	if err != nil {
		return nil, err
	}
	log.Debugf("collection loaded: src=%s, games=%d", src, len(games))
	return games, nil
}

// NewPlanner builds a planner over games using --reset. The planner shares
// one sorter registry built from the command's columns.
func NewPlanner(cmd *cli.Command, games []game.Game) (*planner.Planner, error) {
	mode, err := planner.ParseResetMode(cmd.String("reset"))
	if err != nil {
		return nil, err
	}
	columns := columnsOf(cmd)
	return planner.New(games, columns,
		planner.WithResetMode(mode),
		planner.WithSorter(sorter.NewRegistry(columns)),
	), nil
}

// ApplyFilters runs each --filter in order against p and returns the sorted
// view.
func ApplyFilters(cmd *cli.Command, p *planner.Planner) ([]game.Game, error) {
	sortOn, ascending := cmd.String("sort"), !cmd.Bool("desc")
	for _, expr := range cmd.StringSlice("filter") {
		log.Debugf("applying filter: %q", expr)
		p.Filter(expr)
	}
	return p.View(sortOn, ascending)
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr bgplan <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "bgplan", subcmd)
			c.Stdout = stdout(cmd)
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
