// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package attrs selects and formats the game columns shown in output.
//
// An attribute spec is a comma-separated list of col[:title[:transform]]
// entries. A leading "!" hides a column and "*" applies its transform to
// every column. Transforms combine freely:
//
//	l, u   lower or upper case
//	N      truncate to N characters
//	-N     shorten to N characters, eliding the middle
//	h      thousands separators for numbers
//	o      ordinal suffix for integers (1st, 2nd)
//	.N     N decimal places
package attrs
