// interfaces.go: public interfaces for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "github.com/agilira/go-timecache"

// CacheStats provides statistics about cache behavior.
type CacheStats struct {
	// Hits is the number of lookups that found an entry
	Hits uint64

	// Misses is the number of lookups for unknown keys
	Misses uint64

	// Inserts is the number of Insert operations
	Inserts uint64

	// Promotions is the number of loaded -> in-use transitions
	Promotions uint64

	// Demotions is the number of in-use -> loaded transitions
	Demotions uint64

	// Evictions is the number of entries destroyed by capacity pressure
	Evictions uint64

	// InUse is the current number of entries in the in-use tier
	InUse int

	// Loaded is the current number of entries in the evictable pool
	Loaded int

	// Capacity is the bound of the evictable pool
	Capacity int
}

// HitRatio returns the lookup hit ratio as a percentage (0-100).
// Returns 0.0 if no lookups have been performed yet.
// Formula: (Hits / (Hits + Misses)) * 100
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides ~121x faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// MetricsCollector defines an interface for collecting cache operation metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. This interface is designed for zero overhead when unused.
//
// Performance requirements:
//   - All methods must be allocation-free
//   - All methods must complete in < 100ns for production use
//
// The cache calls these methods from whatever goroutine drives it; since the
// cache itself requires external serialization, implementations only need to
// be as thread-safe as the surrounding synchronization demands.
type MetricsCollector interface {
	// RecordGet records a lookup with its latency and hit/miss result.
	RecordGet(latencyNs int64, hit bool)

	// RecordInsert records an Insert operation with its latency.
	RecordInsert(latencyNs int64)

	// RecordRemove records a Remove operation with its latency.
	RecordRemove(latencyNs int64)

	// RecordPromotion records a loaded -> in-use transition.
	RecordPromotion()

	// RecordDemotion records an in-use -> loaded transition.
	RecordDemotion()

	// RecordEviction records an entry destroyed by capacity pressure.
	RecordEviction()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
// All methods are inlined by the compiler for maximum performance.
type NoOpMetricsCollector struct{}

// RecordGet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}

// RecordInsert does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordInsert(latencyNs int64) {}

// RecordRemove does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRemove(latencyNs int64) {}

// RecordPromotion does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordPromotion() {}

// RecordDemotion does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordDemotion() {}

// RecordEviction does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordEviction() {}
