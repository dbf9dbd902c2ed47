// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/meta"
	"github.com/staranto/bgplan/internal/output"
)

// queryCommandAction is the action handler for the "query" subcommand. It
// loads the collection, narrows it with each --filter in turn and prints the
// sorted view.
func queryCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "query") {
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

	al, err := BuildAttrs(cmd, columnsOf(cmd))
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", al)

	opts := output.FromCommand(cmd)
	if cmd.Bool("count") {
		opts.Footer = fmt.Sprintf("%d of %d games", len(view), p.Total())
	}
	return output.Render(stdout(cmd), view, al, opts)
}

// queryCommandBuilder constructs the cli.Command for "query", wiring metadata,
// flags, and action handlers.
func queryCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "query",
		Aliases:   []string{"q"},
		Usage:     "filter and sort a game collection",
		UsageText: "bgplan query [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "count",
				Usage: "print how many games matched after text output",
			},
		},
		Action: queryCommandAction,
		Meta:   meta,
	}).Build()
}
