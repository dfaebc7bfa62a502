// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig provides dynamic configuration reload capabilities using Argus.
// It watches a configuration file and surfaces cache setting changes as they
// are detected.
//
// The pool capacity is fixed for a cache's lifetime, so a changed capacity
// is never applied in place: it is reported through OnReload (and logged) so
// the owner can rebuild the cache at a convenient point.
type HotConfig struct {
	cache   *ResourceCache
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)

	logger Logger
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations.
	// If nil, uses the cache's logger.
	Logger Logger
}

// NewHotConfig creates a new hot-reloadable configuration watcher for a
// cache. The watcher does not run until Start is called.
//
// Example configuration file (YAML):
//
//	cache:
//	  capacity: 256
//
// Supported configuration keys:
//   - cache.capacity (int): Bound of the evictable pool
//
// Note: Capacity changes require cache reconstruction and are never applied
// dynamically; they are surfaced via OnReload and a warning log.
func NewHotConfig(cache *ResourceCache, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfigPath()
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = cache.logger
	}

	hc := &HotConfig{
		cache:    cache,
		OnReload: opts.OnReload,
		config:   DefaultConfig(),
		logger:   opts.Logger,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrWatcherFailed(opts.ConfigPath, err)
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
// Note: The watcher monitors file changes at the configured PollInterval.
func (hc *HotConfig) Start() error {
	// Check if already running to avoid ARGUS_WATCHER_BUSY error
	if hc.watcher.IsRunning() {
		return nil // Already started
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
// Returns any error from stopping the watcher.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the current configuration (thread-safe).
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData)
	hc.config = newConfig
	hc.mu.Unlock()

	hc.applyChanges(oldConfig, newConfig)

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parsePositiveInt extracts a positive integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseConfig extracts cache configuration from Argus config data.
func (hc *HotConfig) parseConfig(data map[string]interface{}) Config {
	config := DefaultConfig()

	// Extract cache section - Argus might nest it or provide it directly
	cacheSection, ok := data["cache"].(map[string]interface{})
	if !ok {
		// Try if the whole data IS the cache section
		if _, hasCapacity := data["capacity"]; hasCapacity {
			cacheSection = data
		} else {
			return config
		}
	}

	if capacity, ok := parsePositiveInt(cacheSection["capacity"]); ok {
		config.Capacity = capacity
	}

	return config
}

// applyChanges reacts to configuration changes for the running cache.
// Capacity is immutable per cache instance, so a change is only reported;
// rebuilding with the new capacity is the owner's call.
func (hc *HotConfig) applyChanges(old, new Config) {
	if old.Capacity != new.Capacity {
		hc.logger.Warn("capacity change requires cache reconstruction",
			"current", hc.cache.Capacity(),
			"requested", new.Capacity,
		)
	}
}
