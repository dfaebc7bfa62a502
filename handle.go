// handle.go: shared-ownership handles with type erasure and checked downcast
//
// A handle is a reference-counted view of an immutable (key, value) pair.
// RawHandle erases the value's type; Handle[T] carries a compile-time witness
// that the erased value is a T, established by Insert or a successful
// Downcast and never invalidated afterwards.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "sync/atomic"

// Dropper is optionally implemented by cached values that need cleanup.
// Drop is called exactly once, when the last reference to the value's
// entry is released.
type Dropper interface {
	Drop()
}

// handleInner is the shared entry behind every handle: an immutable
// (key, value) pair plus the owner count. Created once at insertion,
// never mutated, dropped when the count reaches zero.
type handleInner struct {
	key   string
	value any
	refs  atomic.Int64
}

// drop finalizes the value once no owner remains.
func (h *handleInner) drop() {
	if d, ok := h.value.(Dropper); ok {
		d.Drop()
	}
}

// RawHandle is a type-erased, shared-ownership reference to a cached entry.
//
// The zero RawHandle references nothing and is what lookups return on a
// miss. Copying a RawHandle does not acquire a reference; use Clone, and
// match every Clone with exactly one Release (or ResourceCache.Remove).
type RawHandle struct {
	inner *handleInner
}

// newRawHandle allocates a fresh entry with a single owner.
func newRawHandle(key string, value any) RawHandle {
	inner := &handleInner{key: key, value: value}
	inner.refs.Store(1)
	return RawHandle{inner: inner}
}

// Valid reports whether the handle references an entry.
func (h RawHandle) Valid() bool {
	return h.inner != nil
}

// Key returns the key the entry was inserted under.
func (h RawHandle) Key() string {
	return h.inner.key
}

// Value returns the erased value. Use Downcast for typed access.
func (h RawHandle) Value() any {
	return h.inner.value
}

// Clone acquires a new reference to the same entry. O(1), no side effects
// beyond the count.
func (h RawHandle) Clone() RawHandle {
	h.inner.refs.Add(1)
	return h
}

// Release drops one reference. When the last reference is released the
// value is dropped (and its Drop method runs, if implemented). Releasing
// more times than acquired is a programming error and panics.
func (h RawHandle) Release() {
	switch n := h.inner.refs.Add(-1); {
	case n == 0:
		h.inner.drop()
	case n < 0:
		panic("xanthos: release of already-dropped handle")
	}
}

// Refs returns the current number of owners of the underlying entry.
// The cache's own tier slot counts as one owner.
func (h RawHandle) Refs() int {
	return int(h.inner.refs.Load())
}

// Same reports whether two handles share the same underlying entry.
// This is identity, not value equality: two entries inserted under the
// same key with equal values are still distinct.
func (h RawHandle) Same(other RawHandle) bool {
	return h.inner == other.inner
}

// Handle is a RawHandle whose erased value is statically known to be a T.
// It is only constructed by Insert, Get and Downcast, which establish the
// type invariant; the erased value's dynamic type cannot change afterwards,
// so Value never fails.
type Handle[T any] struct {
	raw RawHandle
}

// newHandle wraps value and key into a freshly allocated, singly-owned entry.
func newHandle[T any](key string, value T) Handle[T] {
	return Handle[T]{raw: newRawHandle(key, value)}
}

// Downcast checks the erased value's dynamic type against T. On match it
// returns a typed handle over the same shared entry: no allocation, the
// reference count is unchanged. On mismatch it reports false and the caller
// keeps its original RawHandle untouched, free to retry a different type.
func Downcast[T any](h RawHandle) (Handle[T], bool) {
	if h.inner == nil {
		return Handle[T]{}, false
	}
	if _, ok := h.inner.value.(T); !ok {
		return Handle[T]{}, false
	}
	return Handle[T]{raw: h}, true
}

// Valid reports whether the handle references an entry.
func (h Handle[T]) Valid() bool {
	return h.raw.inner != nil
}

// Key returns the key the entry was inserted under.
func (h Handle[T]) Key() string {
	return h.raw.Key()
}

// Value dereferences the handle. The unchecked assertion relies on the
// handle's type invariant; it can only fail if a Handle[T] was forged
// outside Insert/Get/Downcast, which panics rather than yielding a wrong
// value.
func (h Handle[T]) Value() T {
	return h.raw.inner.value.(T)
}

// Raw upcasts to the type-erased handle. No new reference is acquired;
// the returned RawHandle stands for the same ownership the caller already
// holds.
func (h Handle[T]) Raw() RawHandle {
	return h.raw
}

// Clone acquires a new reference to the same entry.
func (h Handle[T]) Clone() Handle[T] {
	return Handle[T]{raw: h.raw.Clone()}
}

// Release drops one reference. See RawHandle.Release.
func (h Handle[T]) Release() {
	h.raw.Release()
}

// Refs returns the current number of owners of the underlying entry.
func (h Handle[T]) Refs() int {
	return h.raw.Refs()
}

// Same reports whether two handles share the same underlying entry.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.raw.Same(other.raw)
}
