// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the bgplan
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.SetNamespace(ns)

	// A missing config file is normal; flags and env still work.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config loaded: %v", err)
		config.Config = config.Type{Namespace: ns}
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Columns:     game.NewRegistry(),
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "bgplan",
		Usage: "Board game planner",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "bgplan version info",
				HideDefault: true,
			},
		},
		// Filter expressions carry commas of their own.
		DisableSliceFlagSeparator: true,
	}

	app.Commands = append(app.Commands,
		queryCommandBuilder(meta),
		listCommandBuilder(meta),
		consoleCommandBuilder(meta),
		columnsCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
