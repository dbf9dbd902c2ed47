// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil keeps copies of remote game collections on local disk so
// repeated runs against the same S3 object skip the download.
package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/staranto/bgplan/internal/log"
)

// Entry is a cached collection on disk.
type Entry struct {
	Key  string
	Path string
	Data []byte
}

// Dir resolves the cache directory: BGPLAN_CACHE_DIR when set, otherwise
// os.UserCacheDir()/bgplan. The second value is false when neither resolves.
func Dir() (string, bool) {
	if c := os.Getenv("BGPLAN_CACHE_DIR"); c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "bgplan"), true
	}
	return "", false
}

// Enabled is true unless BGPLAN_CACHE is "0" or "false".
func Enabled() bool {
	v := os.Getenv("BGPLAN_CACHE")
	return v != "0" && v != "false"
}

// EntryPath is where key lives beneath subdirs, and whether it exists.
func EntryPath(subdirs []string, key string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}

	parts := append([]string{base}, subdirs...)
	p := filepath.Join(append(parts, encodeKey(key))...)
	_, err := os.Stat(p)
	return p, err == nil
}

// Read returns the cached entry for key.
func Read(subdirs []string, key string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}

	p, ok := EntryPath(subdirs, key)
	if !ok {
		return nil, false
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}

	log.Debugf("cache hit: key=%s", key)
	return &Entry{Key: key, Path: p, Data: data}, true
}

// Write stores data for key beneath subdirs. It is a no-op when the cache is
// disabled.
func Write(subdirs []string, key string, data []byte) error {
	if !Enabled() {
		return nil
	}

	p, ok := EntryPath(subdirs, key)
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	log.Debugf("cache write: key=%s, bytes=%d", key, len(data))
	return nil
}

// Purge removes cache files older than hours. hours <= 0 disables purging.
func Purge(hours int) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil || time.Since(info.ModTime()) <= maxAge {
			return nil
		}
		if err := os.Remove(path); err != nil {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			return nil
		}
		log.Debugf("removed cache file %s", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

func encodeKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
