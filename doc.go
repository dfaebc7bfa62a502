// Package xanthos provides a keyed resource cache that pairs strongly-typed,
// shared-ownership handles with bounded LRU eviction of unreferenced entries.
//
// # Overview
//
// Xanthos is designed for in-process resource managers (asset pipelines,
// handle tables, expensive decoded objects) with focus on:
//   - Shared Ownership: reference-counted handles keep entries pinned while used
//   - Type Safety: Handle[T] with checked downcast from the erased RawHandle
//   - Bounded Memory: unreferenced entries live in a capacity-bounded LRU pool
//   - Observability: Logger and MetricsCollector interfaces, zero overhead by default
//
// # Two-Tier Storage
//
// Every key lives in exactly one of two tiers:
//
//   - In-use tier: unbounded map of entries with at least one external handle
//     outstanding (plus the cache's own reference).
//   - Loaded tier: bounded, recency-ordered pool of entries the cache is the
//     sole owner of. Only this tier is subject to capacity-driven eviction.
//
// Entries move between tiers through three transitions:
//
//	Insert    -> in-use          (new entry, caller holds a handle)
//	Remove    -> loaded          (demotion; only when no external owner remains)
//	Get       -> in-use          (promotion; a pooled entry is looked up again)
//
// # Quick Start
//
//	import "github.com/agilira/xanthos"
//
//	type Texture struct {
//	    Width, Height int
//	    Pixels        []byte
//	}
//
//	func main() {
//	    cache, err := xanthos.NewResourceCache(xanthos.Config{Capacity: 128})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Insert a value, get a typed handle
//	    hero := xanthos.Insert(cache, "textures/hero", Texture{Width: 512, Height: 512})
//
//	    // Dereference (type-safe, no assertion needed)
//	    fmt.Println(hero.Value().Width)
//
//	    // Share the entry: clones raise the reference count
//	    clone := hero.Clone()
//
//	    // Return handles to the cache when done; the entry is demoted to the
//	    // evictable pool only once the last external owner is gone.
//	    clone.Release()
//	    cache.Remove(hero.Raw())
//	}
//
// # Handle Lifecycle
//
// A handle is a shared reference to an immutable (key, value) pair. The
// reference count starts at 2 after Insert (the caller's handle plus the
// cache's in-use slot). Clone acquires a reference, Release drops one, and
// ResourceCache.Remove consumes the caller's reference while deciding whether
// to demote. When the count reaches zero the value is dropped; values that
// implement Dropper get their Drop method called at that point.
//
// Copying a RawHandle or Handle[T] struct does NOT acquire a reference.
// Clone and Release are the explicit acquire/release pair; every Clone must
// be matched by exactly one Release (or one ResourceCache.Remove).
//
// # Type Erasure and Downcast
//
// The cache stores heterogeneous values behind type-erased RawHandles.
// Downcast recovers the static type with a runtime check:
//
//	raw, ok := cache.GetRaw("textures/hero")
//	if tex, ok := xanthos.Downcast[Texture](raw); ok {
//	    use(tex.Value())
//	}
//
// A failed downcast leaves the handle, the entry and its reference count
// untouched; callers route on type rather than treating mismatch as an error.
//
// # Concurrency Model
//
// The cache itself is single-owner: operations are non-blocking, run to
// completion, and take no internal locks. Remove's reference-count check is a
// read-then-act sequence, so concurrent use requires external serialization
// (one exclusive lock around every cache call). Handle operations
// (Clone/Release/Refs) are atomic, so handles themselves may be passed
// between goroutines freely.
//
// # Observability
//
// Built-in stats tracking:
//
//	stats := cache.Stats()
//	fmt.Printf("Hits: %d, Misses: %d, Hit Ratio: %.2f%%\n",
//	    stats.Hits, stats.Misses, stats.HitRatio())
//	fmt.Printf("InUse: %d, Loaded: %d, Evictions: %d\n",
//	    stats.InUse, stats.Loaded, stats.Evictions)
//
// Operation latencies and transition counts can be exported through the
// MetricsCollector interface; the default NoOpMetricsCollector costs nothing.
//
// # Error Handling
//
// Construction uses structured errors with error codes:
//
//	cache, err := xanthos.NewResourceCache(xanthos.Config{Capacity: 0})
//	if err != nil {
//	    if xanthos.IsConfigError(err) {
//	        log.Fatalf("bad cache config: %v", err)
//	    }
//	}
//
// The steady-state API has no recoverable errors: lookups are comma-ok,
// downcast mismatch is comma-ok, and a violated handle type invariant is a
// programming error that panics rather than yielding a wrong value.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos
