// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package game defines the board game record and its fixed schema.
//
// A Game is a comparable value, so two games with identical fields are the
// same entry when stored in a Set. Each field is described by a Column that
// carries its Kind (text, integer or decimal) and an accessor. Columns are
// built once by NewRegistry and shared by reference; lookups by name are
// case-insensitive and honor the aliases used by common collection exports
// (e.g. "objectId", "avgWeight", "yearPublished").
package game
