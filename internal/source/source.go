// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	awsx "github.com/staranto/bgplan/internal/aws"
	"github.com/staranto/bgplan/internal/cacheutil"
	"github.com/staranto/bgplan/internal/game"
	"github.com/staranto/bgplan/internal/log"
)

// Stdin is the source name for standard input.
const Stdin = "-"

// options controls how a source is read.
type options struct {
	format     Format
	stdin      io.Reader
	getter     awsx.ObjectGetter
	awsOpts    []awsx.Option
	cacheClean int
	jsonPath   string
}

// Option customizes Load.
type Option func(*options)

// WithFormat forces a format instead of guessing from the name or content.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithStdin replaces os.Stdin as the reader for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithObjectGetter supplies the S3 client used for s3:// sources.
func WithObjectGetter(g awsx.ObjectGetter) Option {
	return func(o *options) { o.getter = g }
}

// WithAWS passes options through to AWS config loading when no object getter
// is supplied.
func WithAWS(opts ...awsx.Option) Option {
	return func(o *options) { o.awsOpts = append(o.awsOpts, opts...) }
}

// WithJSONPath names where the games array sits inside a JSON document, e.g.
// "export.items". See driller.Drill for the path syntax.
func WithJSONPath(path string) Option {
	return func(o *options) { o.jsonPath = path }
}

// WithCacheClean purges cached S3 objects older than hours before reading.
func WithCacheClean(hours int) Option {
	return func(o *options) { o.cacheClean = hours }
}

// Load reads and decodes the collection named by src.
func Load(ctx context.Context, src string, columns *game.Registry, opts ...Option) ([]game.Game, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := read(ctx, src, &o)
	if err != nil {
		return nil, err
	}

	format := o.format
	if format == FormatAuto {
		format = detectFormat(src, data)
	}
	log.Debugf("source read: src=%s, format=%s, bytes=%d", src, format, len(data))

	games, err := decode(data, format, columns, o.jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", src, err)
	}
	return games, nil
}

func read(ctx context.Context, src string, o *options) ([]byte, error) {
	switch {
	case src == "":
		return nil, errors.New("no game source given")

	case src == Stdin:
		data, err := io.ReadAll(o.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil

	case awsx.IsURI(src):
		return readS3(ctx, src, o)

	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read game source: %w", err)
		}
		return data, nil
	}
}

func readS3(ctx context.Context, uri string, o *options) ([]byte, error) {
	loc, err := awsx.ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if err := cacheutil.Purge(o.cacheClean); err != nil {
		log.WithError(err).Warnf("failed to purge cache")
	}

	sub := []string{"s3", loc.Bucket}
	if entry, ok := cacheutil.Read(sub, uri); ok {
		return entry.Data, nil
	}

	getter := o.getter
	if getter == nil {
		cfg, err := awsx.LoadAWSConfig(ctx, o.awsOpts...)
		if err != nil {
			return nil, err
		}
		getter = awsx.NewS3(cfg, o.awsOpts...)
	}

	data, err := awsx.Fetch(ctx, getter, loc)
	if err != nil {
		return nil, err
	}

	if err := cacheutil.Write(sub, uri, data); err != nil {
		log.WithError(err).Errorf("error writing to cache")
	}
	return data, nil
}
