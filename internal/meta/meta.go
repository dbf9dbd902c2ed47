// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/game"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the column registry every command resolves
// names through, and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Columns     *game.Registry
	StartingDir string
}
