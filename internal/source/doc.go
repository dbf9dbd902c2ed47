// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source loads a game collection. A source is one of:
//
//	-                    standard input
//	s3://bucket/key      an S3 object, cached locally between runs
//	path/to/games.csv    a local CSV file with a header row
//	path/to/games.json   a local JSON array, or an object with a "games" array
//
// CSV headers and JSON keys are matched against the column registry, so any
// column name or alias may be used. Records that cannot be decoded are logged
// and skipped.
package source
