// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package console is the interactive planning session. A Session owns one
// filter chain and one game list and turns command lines into text; the
// terminal UI in this package only handles input, history and display.
package console
