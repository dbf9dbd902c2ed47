// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/meta"
)

// QueryCommandBuilder is a helper that constructs a cli.Command for the
// collection subcommands (query, list, console) using a consistent pattern.
// The builder wires metadata, applies global flags, scopes config lookups to
// the command name and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Aliases   []string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Aliases:   qcb.Aliases,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, NewGlobalFlags(qcb.Name, qcb.Meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			config.SetNamespace(qcb.Name)
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}
