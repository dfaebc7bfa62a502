// hot-reload_test.go: tests for dynamic configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewHotConfig tests HotConfig creation
func TestNewHotConfig(t *testing.T) {
	cache := newTestCache(t, 16)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	initialConfig := `cache:
  capacity: 64
`
	if err := os.WriteFile(configPath, []byte(initialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	hc, err := NewHotConfig(cache, HotConfigOptions{
		ConfigPath:   configPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewHotConfig failed: %v", err)
	}
	defer func() { _ = hc.Stop() }()

	if hc.cache != cache {
		t.Error("HotConfig cache reference mismatch")
	}
	if hc.watcher == nil {
		t.Error("Expected non-nil watcher")
	}
}

// TestNewHotConfig_EmptyPath tests error handling for empty path
func TestNewHotConfig_EmptyPath(t *testing.T) {
	cache := newTestCache(t, 16)

	_, err := NewHotConfig(cache, HotConfigOptions{
		ConfigPath: "",
	})
	if err == nil {
		t.Fatal("Expected error for empty config path")
	}
	if GetErrorCode(err) != ErrCodeInvalidConfigPath {
		t.Errorf("Expected %s, got %s", ErrCodeInvalidConfigPath, GetErrorCode(err))
	}
}

// TestHotConfig_StartStop tests starting and stopping the watcher
func TestHotConfig_StartStop(t *testing.T) {
	cache := newTestCache(t, 16)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	config := `cache:
  capacity: 32
`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	hc, err := NewHotConfig(cache, HotConfigOptions{
		ConfigPath:   configPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewHotConfig failed: %v", err)
	}

	if err := hc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Give it a moment to start
	time.Sleep(50 * time.Millisecond)

	if err := hc.Stop(); err != nil {
		t.Errorf("Failed to stop: %v", err)
	}
}

// TestHotConfig_ParseConfig tests config extraction from watcher data
func TestHotConfig_ParseConfig(t *testing.T) {
	hc := &HotConfig{logger: NoOpLogger{}}

	tests := []struct {
		name         string
		data         map[string]interface{}
		wantCapacity int
	}{
		{
			name: "nested cache section",
			data: map[string]interface{}{
				"cache": map[string]interface{}{"capacity": 128},
			},
			wantCapacity: 128,
		},
		{
			name:         "flat section",
			data:         map[string]interface{}{"capacity": float64(64)},
			wantCapacity: 64,
		},
		{
			name:         "missing section keeps default",
			data:         map[string]interface{}{"unrelated": true},
			wantCapacity: DefaultCapacity,
		},
		{
			name: "non-positive capacity ignored",
			data: map[string]interface{}{
				"cache": map[string]interface{}{"capacity": -1},
			},
			wantCapacity: DefaultCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := hc.parseConfig(tt.data)
			if config.Capacity != tt.wantCapacity {
				t.Errorf("Expected capacity %d, got %d", tt.wantCapacity, config.Capacity)
			}
		})
	}
}

// TestHotConfig_OnReloadFired tests the reload callback path
func TestHotConfig_OnReloadFired(t *testing.T) {
	cache := newTestCache(t, 16)

	var gotOld, gotNew Config
	hc := &HotConfig{
		cache:  cache,
		config: DefaultConfig(),
		logger: NoOpLogger{},
		OnReload: func(oldConfig, newConfig Config) {
			gotOld = oldConfig
			gotNew = newConfig
		},
	}

	hc.handleConfigChange(map[string]interface{}{
		"cache": map[string]interface{}{"capacity": 512},
	})

	if gotOld.Capacity != DefaultCapacity {
		t.Errorf("Expected old capacity %d, got %d", DefaultCapacity, gotOld.Capacity)
	}
	if gotNew.Capacity != 512 {
		t.Errorf("Expected new capacity 512, got %d", gotNew.Capacity)
	}
	if hc.GetConfig().Capacity != 512 {
		t.Errorf("Expected stored config updated, got %d", hc.GetConfig().Capacity)
	}

	// the running cache is never resized in place
	if cache.Capacity() != 16 {
		t.Errorf("Expected cache capacity unchanged, got %d", cache.Capacity())
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		value interface{}
		want  int
		ok    bool
	}{
		{5, 5, true},
		{float64(7), 7, true},
		{0, 0, false},
		{-3, 0, false},
		{"12", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePositiveInt(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parsePositiveInt(%v) = (%d, %v), want (%d, %v)",
				tt.value, got, ok, tt.want, tt.ok)
		}
	}
}
