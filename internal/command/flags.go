// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/output"
	"github.com/staranto/bgplan/internal/source"
)

// NewGlobalFlags returns the flags shared by every collection command. ns is
// the command name used as the config namespace and cfg is the config file
// backing flag defaults.
func NewGlobalFlags(ns string, cfg string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NewSourceFlag(ns, cfg),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of columns to include in results",
			Sources: cli.NewValueSourceChain(cli.EnvVar("BGPLAN_ATTRS")),
		}),
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (" + strings.Join(output.Formats(), ", ") + ")",
			Value:   output.FormatText,
			Sources: cli.NewValueSourceChain(cli.EnvVar("BGPLAN_OUTPUT")),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		&cli.IntFlag{
			Name:  "padding",
			Usage: "spaces between text columns",
			Value: 2,
		},
		&cli.BoolFlag{
			Name:  "no-index",
			Usage: "omit the position column from text output",
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "column to sort the results by",
			Value:   "name",
		}),
		&cli.BoolFlag{
			Name:  "desc",
			Usage: "sort descending",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:  "format",
			Usage: "collection format (auto, csv, json)",
			Value: string(source.FormatAuto),
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:  "json-path",
			Usage: "dot path to the games array in a JSON collection, e.g. export.items",
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "reset",
			Usage:   "what reset restores (full, empty)",
			Value:   "full",
			Sources: cli.NewValueSourceChain(cli.EnvVar("BGPLAN_RESET")),
			Validator: func(value string) error {
				return FlagValidators(value, ResetValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS profile for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_REGION")),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
			Name:    "endpoint",
			Usage:   "S3 endpoint override, e.g. a local MinIO",
			Sources: cli.NewValueSourceChain(cli.EnvVar("BGPLAN_S3_ENDPOINT")),
		}),
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "filter expression, e.g. \"minPlayers >= 4, rating > 7\". Repeat to narrow further",
		},
		&cli.BoolFlag{
			Name:        "tldr",
			Usage:       "show tldr page",
			Hidden:      !pathHas("tldr"),
			HideDefault: true,
		},
	}

	return
}

// NewSourceFlag constructs the flag naming the game collection: a file, "-"
// for stdin or an s3:// URI.
func NewSourceFlag(ns string, cfg string) *cli.StringFlag {
	return NameSpacedValueChainFlagFromConfigFile(ns, cfg, &cli.StringFlag{
		Name:    "source",
		Aliases: []string{"d", "data"},
		Usage:   "game collection: a .csv or .json file, - for stdin, or s3://bucket/key",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BGPLAN_SOURCE")),
	})
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. An empty path leaves the flag
// alone.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
