// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/staranto/bgplan/internal/command"
	"github.com/staranto/bgplan/internal/config"
	"github.com/staranto/bgplan/internal/log"
	"github.com/staranto/bgplan/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Long())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip set expansion and let the CLI handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") && args[1] != "completion" {
		if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
			config.SetNamespace(args[1])
			if _, err := config.Load(); err != nil {
				log.Debugf("no config for set expansion: %v", err)
			}
		}
		args = processSetOnly(args, config.GetStringSlice)
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @name argument into the args stored under the
// config key "<command>.<name>". Each entry may hold several space separated
// args. Without an @name, args are returned unchanged.
func processSetOnly(args []string, lookup func(string, ...[]string) ([]string, error)) []string {
	if len(args) < 3 {
		return args
	}

	idx := -1
	for i, a := range args[2:] {
		if strings.HasPrefix(a, "@") && len(a) > 1 {
			idx = i + 2
			break
		}
	}
	if idx == -1 {
		return args
	}

	entries, err := lookup(args[1] + "." + args[idx][1:])
	if err != nil {
		log.Warnf("set %s not found: %v", args[idx], err)
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)-1+len(expanded))
	out = append(out, args[:idx]...)
	out = append(out, expanded...)
	return append(out, args[idx+1:]...)
}
