// lru_test.go: unit tests for the bounded recency pool
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

func TestLRUPool_PutPop(t *testing.T) {
	p := newLRUPool(2)

	h := newRawHandle("a", 1)
	if _, overflow := p.put("a", h); overflow {
		t.Error("Unexpected overflow on first put")
	}
	if p.len() != 1 {
		t.Errorf("Expected len 1, got %d", p.len())
	}

	got, ok := p.pop("a")
	if !ok || !got.Same(h) {
		t.Error("Expected pop to return the pooled handle")
	}
	if p.len() != 0 {
		t.Errorf("Expected empty pool after pop, got len %d", p.len())
	}
	// pop transfers ownership, it must not release
	if got.Refs() != 1 {
		t.Errorf("Expected reference preserved across pop, got %d", got.Refs())
	}
}

func TestLRUPool_OverflowEvictsOldest(t *testing.T) {
	p := newLRUPool(2)

	p.put("a", newRawHandle("a", 1))
	p.put("b", newRawHandle("b", 2))

	ev, overflow := p.put("c", newRawHandle("c", 3))
	if !overflow {
		t.Fatal("Expected overflow on third put with capacity 2")
	}
	if ev.key != "a" {
		t.Errorf("Expected oldest key 'a' evicted, got %q", ev.key)
	}
	if p.len() != 2 {
		t.Errorf("Expected len 2 after overflow, got %d", p.len())
	}
	if _, ok := p.peek("a"); ok {
		t.Error("Expected 'a' gone from pool")
	}
}

func TestLRUPool_RecencyOrder(t *testing.T) {
	p := newLRUPool(2)

	p.put("a", newRawHandle("a", 1))
	p.put("b", newRawHandle("b", 2))

	// popping and re-putting "a" makes "b" the oldest
	h, _ := p.pop("a")
	p.put("a", h)

	ev, overflow := p.put("c", newRawHandle("c", 3))
	if !overflow || ev.key != "b" {
		t.Errorf("Expected 'b' evicted after 'a' was refreshed, got %q", ev.key)
	}
}

func TestLRUPool_PeekDoesNotTouchOrder(t *testing.T) {
	p := newLRUPool(2)

	p.put("a", newRawHandle("a", 1))
	p.put("b", newRawHandle("b", 2))

	if _, ok := p.peek("a"); !ok {
		t.Fatal("Expected peek to find 'a'")
	}

	// "a" stays oldest despite the peek
	ev, overflow := p.put("c", newRawHandle("c", 3))
	if !overflow || ev.key != "a" {
		t.Errorf("Expected 'a' still oldest after peek, evicted %q", ev.key)
	}
}

func TestLRUPool_PutExistingKeyDisplaces(t *testing.T) {
	p := newLRUPool(2)

	first := newRawHandle("a", 1)
	p.put("a", first)

	displaced, ok := p.put("a", newRawHandle("a", 2))
	if !ok || !displaced.handle.Same(first) {
		t.Error("Expected re-put under same key to hand back the displaced entry")
	}
	if p.len() != 1 {
		t.Errorf("Expected single slot for the key, got len %d", p.len())
	}
}

func TestLRUPool_Drain(t *testing.T) {
	p := newLRUPool(3)

	p.put("a", newRawHandle("a", 1))
	p.put("b", newRawHandle("b", 2))

	var keys []string
	p.drain(func(key string, h RawHandle) {
		keys = append(keys, key)
	})

	if len(keys) != 2 {
		t.Fatalf("Expected 2 drained entries, got %d", len(keys))
	}
	// most recent first
	if keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Expected drain order [b a], got %v", keys)
	}
	if p.len() != 0 {
		t.Errorf("Expected empty pool after drain, got %d", p.len())
	}

	// pool is reusable after drain
	if _, overflow := p.put("c", newRawHandle("c", 3)); overflow {
		t.Error("Unexpected overflow after drain")
	}
}
