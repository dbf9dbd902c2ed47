// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads bgplan's YAML configuration and exposes typed getters
// over dotted keys such as "cache.clean" or "query.sort". The file is
// BGPLAN_CFG_FILE when set, otherwise bgplan.yaml in the directory returned by
// os.UserConfigDir:
//   - Linux: $XDG_CONFIG_HOME/bgplan.yaml or $HOME/.config/bgplan.yaml
//   - macOS: $HOME/Library/Application Support/bgplan.yaml
//   - Windows: %AppData%/bgplan.yaml
package config
