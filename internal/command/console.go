// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/console"
	"github.com/staranto/bgplan/internal/gamelist"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/meta"
	"github.com/staranto/bgplan/internal/output"
	"github.com/staranto/bgplan/internal/source"
)

// consoleCommandAction is the action handler for the "console" subcommand.
// It loads the collection and starts an interactive session on a terminal,
// or runs stdin as a script of console commands otherwise.
func consoleCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "console") {
		return nil
	}

	in := stdin(cmd)
	interactive := isTerminal(in)
	if !interactive && (cmd.String("source") == "" || cmd.String("source") == source.Stdin) {
		return errors.New("console reads commands from stdin; name the collection with --source")
	}

	games, err := LoadCollection(ctx, cmd)
	if err != nil {
		return err
	}

	p, err := NewPlanner(cmd, games)
	if err != nil {
		return err
	}
	for _, expr := range cmd.StringSlice("filter") {
		p.Filter(expr)
	}

	al, err := BuildAttrs(cmd, columnsOf(cmd))
	if err != nil {
		return err
	}

	s := console.NewSession(p, gamelist.New(), columnsOf(cmd),
		console.WithAttrs(al),
		console.WithOutput(output.FromCommand(cmd)),
		console.WithSort(cmd.String("sort"), !cmd.Bool("desc")),
	)

	if interactive {
		return console.Run(s)
	}
	return console.RunScript(s, in, stdout(cmd))
}

// consoleCommandBuilder constructs the cli.Command for "console", wiring
// metadata, flags, and action handlers.
func consoleCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "console",
		Aliases:   []string{"c"},
		Usage:     "interactive planning console",
		UsageText: "bgplan console --source games.csv",
		Action:    consoleCommandAction,
		Meta:      meta,
	}).Build()
}
