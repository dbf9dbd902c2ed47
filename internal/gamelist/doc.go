// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package gamelist holds the games a user has picked out of a collection.
//
// Games are added and removed with a selection string:
//
//	all      every game in the reference sequence
//	N        the Nth game, 1-based
//	N-M      games N through M, inclusive
//	<name>   the game with exactly that name, case-insensitive
//
// Adds resolve against the reference sequence handed in by the caller,
// normally the current filtered view. Removes resolve against the list
// itself, ordered by name. A selection either applies completely or leaves
// the list untouched.
package gamelist
