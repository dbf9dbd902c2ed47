// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller walks JSON documents along short dot paths. Collection
// exports nest their game arrays in different places; a path finds them.
package driller
