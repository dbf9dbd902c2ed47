// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/staranto/bgplan/internal/log"
)

// FileName is the config file looked up in the user config directory.
const FileName = "bgplan.yaml"

// Type is the loaded configuration. Data is the raw YAML tree; use the typed
// getters to read it. When Namespace is set (usually the running command's
// name) a key is looked up under the namespace first.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration.
var Config Type

// ErrNotFound is returned by the getters for a missing key with no default.
var ErrNotFound = errors.New("config key not found")

func init() {
	_, _ = Load()
}

// lookup finds key, trying the namespaced form first. The config file is
// loaded lazily the first time a key is requested.
func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// GetBool returns the boolean at key. Strings such as "true" or "0" are
// accepted.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s is not a bool: %w", key, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%s is not a bool", key)
	}
}

// GetInt returns the integer at key. YAML may decode numbers as int, int64 or
// float64; all are accepted.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s is not an int", key)
	}
}

// GetString returns the string at key.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string", key)
	}
	return s, nil
}

// GetStringSlice returns the list of strings at key. A scalar string is
// returned as a one-element slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not a string", key, i)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s is not a list", key)
	}
}

// Load reads the config file into Config. An explicit path wins over
// BGPLAN_CFG_FILE and the user config directory. The namespace of the current
// Config is kept.
func Load(cfgFilePath ...string) (Type, error) {
	var path string
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else {
		p, err := getConfigFile()
		if err != nil {
			return Type{}, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

// SetNamespace scopes later lookups to ns, e.g. "query" makes "sort" resolve
// "query.sort" before "sort".
func SetNamespace(ns string) {
	Config.Namespace = ns
}

// get walks the dotted key path kspec through Data.
func (cfg *Type) get(kspec string) (any, error) {
	candidates := []string{kspec}
	if cfg.Namespace != "" {
		candidates = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidates {
		if v, ok := walk(cfg.Data, strings.Split(key, ".")); ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(candidates, ", "))
}

func walk(node any, keys []string) (any, bool) {
	current := node
	for _, k := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if current, ok = m[k]; !ok {
			return nil, false
		}
	}
	return current, true
}

// getConfigFile resolves the config file: BGPLAN_CFG_FILE when set, otherwise
// bgplan.yaml in os.UserConfigDir.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv("BGPLAN_CFG_FILE"); cfgPath != "" {
		info, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at BGPLAN_CFG_FILE path: %s", cfgPath)
		}
		if info.IsDir() {
			return "", fmt.Errorf("BGPLAN_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from BGPLAN_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, FileName)
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", errors.New("no config file found in standard locations")
}
