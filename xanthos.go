// Package xanthos provides a keyed resource cache with reference-counted
// handles and bounded LRU eviction of unreferenced entries.
//
// Xanthos tracks every cached value through shared-ownership handles: as long
// as any caller holds a handle, the entry stays pinned in the in-use tier.
// Once the last external handle is returned, the entry is demoted to a
// bounded, recency-ordered pool where it remains retrievable until capacity
// pressure evicts it.
//
// Example usage:
//
//	cache, _ := xanthos.NewResourceCache(xanthos.Config{Capacity: 64})
//
//	texture := xanthos.Insert(cache, "textures/hero", loadTexture())
//	// ... use texture.Value() ...
//	cache.Remove(texture.Raw())
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of Xanthos resource cache library
	Version = "v0.1.0-dev"

	// DefaultCapacity is the default bound of the evictable pool
	DefaultCapacity = 256
)
