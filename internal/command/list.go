// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/gamelist"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/meta"
	"github.com/staranto/bgplan/internal/output"
	"github.com/staranto/bgplan/internal/picker"
)

// listCommandAction is the action handler for the "list" subcommand. It
// builds a game list from the filtered view: --load seeds it, --add and
// --pick add from the view, --remove drops from the list. The list is then
// saved with --save or printed.
func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "list") {
		return nil
	}

	games, err := LoadCollection(ctx, cmd)
	if err != nil {
		return err
	}

	p, err := NewPlanner(cmd, games)
	if err != nil {
		return err
	}

	view, err := ApplyFilters(cmd, p)
	if err != nil {
		return err
	}

	list := gamelist.New()

	if path := cmd.String("load"); path != "" {
		if err := list.Load(path, p.All()); err != nil {
			return err
		}
	}

	for _, sel := range cmd.StringSlice("add") {
		if err := list.AddToList(sel, view); err != nil {
			return err
		}
	}

	if cmd.Bool("pick") {
		if err := pickInto(cmd, list, view); err != nil {
			return err
		}
	}

	for _, sel := range cmd.StringSlice("remove") {
		if err := list.RemoveFromList(sel); err != nil {
			return err
		}
	}

	if path := cmd.String("save"); path != "" {
		if err := list.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout(cmd), "saved %d games to %s\n", list.Count(), path)
		return nil
	}

	al, err := BuildAttrs(cmd, columnsOf(cmd))
	if err != nil {
		return err
	}
	return output.Render(stdout(cmd), list.Games(), al, output.FromCommand(cmd))
}

// pickInto runs the interactive picker over view and adds the chosen games.
func pickInto(cmd *cli.Command, list *gamelist.List, view []game.Game) error {
	if !isTerminal(stdin(cmd)) {
		return errors.New("--pick needs an interactive terminal")
	}

	positions, err := picker.Pick(fmt.Sprintf("Select games (%d shown)", len(view)), view)
	if errors.Is(err, picker.ErrCanceled) {
		log.Debug("pick canceled")
		return nil
	}
	if err != nil {
		return err
	}

	for _, sel := range picker.Selections(positions) {
		if err := list.AddToList(sel, view); err != nil {
			return err
		}
	}
	return nil
}

// listCommandBuilder constructs the cli.Command for "list", wiring metadata,
// flags, and action handlers.
func listCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "list",
		Aliases:   []string{"l"},
		Usage:     "build a list of games from a collection",
		UsageText: "bgplan list [options] --add 1-3 --add Chess",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "add",
				Usage: "add games from the filtered view: all, N, N-M or a name",
			},
			&cli.StringSliceFlag{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "remove games from the list: all, N, N-M or a name",
			},
			&cli.StringFlag{
				Name:  "load",
				Usage: "seed the list from a file of game names",
			},
			&cli.StringFlag{
				Name:  "save",
				Usage: "write the list's names to a file instead of printing it",
			},
			&cli.BoolFlag{
				Name:  "pick",
				Usage: "choose games from the view interactively",
			},
		},
		Action: listCommandAction,
		Meta:   meta,
	}).Build()
}
