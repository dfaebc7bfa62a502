// lru.go: bounded recency-ordered pool for the loaded tier
//
// The pool holds one cache-owned reference per entry. Reference transfer is
// the point of this structure: pop hands the stored handle back without
// releasing it (promotion keeps the reference alive in the in-use tier),
// while overflow returns the oldest entry so the cache can release it.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "container/list"

// poolEntry is what the recency list stores: the key is duplicated here so
// overflow eviction can find the map slot from a list element.
type poolEntry struct {
	key    string
	handle RawHandle
}

// lruPool is a capacity-bounded map + doubly-linked-list LRU.
// Front of the list is most recently pooled.
type lruPool struct {
	capacity int
	elems    map[string]*list.Element
	order    *list.List
}

func newLRUPool(capacity int) *lruPool {
	return &lruPool{
		capacity: capacity,
		elems:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// put pools a handle under its key, taking over the caller's reference.
// If the pool exceeds capacity the least-recently pooled entry is removed
// and returned with evicted=true; the caller owns releasing it. A put for a
// key already pooled replaces the slot and returns the displaced entry the
// same way (the cache's tier exclusivity makes this path unreachable, but
// the pool stays correct without relying on it).
func (p *lruPool) put(key string, h RawHandle) (evicted poolEntry, ok bool) {
	if elem, exists := p.elems[key]; exists {
		old := elem.Value.(*poolEntry)
		displaced := *old
		old.handle = h
		p.order.MoveToFront(elem)
		return displaced, true
	}

	p.elems[key] = p.order.PushFront(&poolEntry{key: key, handle: h})

	if p.order.Len() > p.capacity {
		oldest := p.order.Back()
		entry := oldest.Value.(*poolEntry)
		p.order.Remove(oldest)
		delete(p.elems, entry.key)
		return *entry, true
	}
	return poolEntry{}, false
}

// pop removes and returns the handle pooled under key without releasing it:
// the reference it held moves with the return value to the caller.
func (p *lruPool) pop(key string) (RawHandle, bool) {
	elem, exists := p.elems[key]
	if !exists {
		return RawHandle{}, false
	}
	entry := elem.Value.(*poolEntry)
	p.order.Remove(elem)
	delete(p.elems, key)
	return entry.handle, true
}

// peek reports the handle pooled under key without touching recency order
// or ownership.
func (p *lruPool) peek(key string) (RawHandle, bool) {
	elem, exists := p.elems[key]
	if !exists {
		return RawHandle{}, false
	}
	return elem.Value.(*poolEntry).handle, true
}

func (p *lruPool) len() int {
	return p.order.Len()
}

// drain empties the pool, calling fn with each entry from most to least
// recent. Ownership of each handle passes to fn.
func (p *lruPool) drain(fn func(key string, h RawHandle)) {
	for elem := p.order.Front(); elem != nil; elem = elem.Next() {
		entry := elem.Value.(*poolEntry)
		fn(entry.key, entry.handle)
	}
	p.elems = make(map[string]*list.Element)
	p.order.Init()
}
