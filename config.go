// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Config holds configuration parameters for the resource cache.
type Config struct {
	// Capacity is the bound of the evictable (loaded) pool: the maximum
	// number of unreferenced entries retained before LRU eviction kicks in.
	// Must be > 0 and is fixed for the cache's lifetime. The in-use tier is
	// unbounded; it holds whatever callers keep referenced.
	Capacity int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for latency measurement.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics (latencies,
	// hit/miss rates, tier transitions).
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	// Use this to integrate with Prometheus, DataDog, StatsD, or other monitoring systems.
	MetricsCollector MetricsCollector

	// OnEvict is called when an entry is destroyed by capacity pressure in
	// the evictable pool. The value is still live when the callback runs;
	// its Dropper (if any) fires afterwards.
	// This callback must be fast and non-blocking.
	OnEvict func(key string, value interface{})
}

// Validate checks configuration parameters and applies ambient defaults.
//
// Unlike the ambient fields, Capacity is not defaulted: an unreferenced-entry
// bound is the one structural decision the caller must make, and a
// non-positive value fails fast here rather than surfacing as surprising
// eviction behavior later. Use DefaultConfig for a ready-to-use starting
// point.
//
// Default values applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return NewErrInvalidCapacity(c.Capacity)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}
