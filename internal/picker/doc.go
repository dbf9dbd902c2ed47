// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package picker is a terminal multi-select over a list of games. The chosen
// rows come back as 1-based positions, ready to feed to gamelist selections.
package picker
