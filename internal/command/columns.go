// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/meta"
	"github.com/staranto/bgplan/internal/output"
)

func columnsCommandAction(ctx context.Context, cmd *cli.Command) error {
	output.DumpColumns(stdout(cmd), columnsOf(cmd))
	return nil
}

// columnsCommandBuilder constructs the cli.Command for "columns", which lists
// the columns filters, sorts and --attrs accept.
func columnsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "columns",
		Usage:     "list columns, their kinds, operators and aliases",
		UsageText: "bgplan columns",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: columnsCommandAction,
	}
}
