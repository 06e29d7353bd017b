// SPDX-License-Identifier: MIT
// Package det: the witness cache. One FindBasis verdict per module instance,
// concurrent discovery collapsed through singleflight.

package det

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lindet/linear"
)

// witnessEntry is a memoized oracle verdict: either a witness or the
// definite absence of one. Both outcomes are worth remembering.
type witnessEntry struct {
	w  *linear.Witness
	ok bool
}

// Cache memoizes basis discovery per module instance. Keying is by module
// identity (the interface value, which is a pointer for every module in
// this library), never by structure: two separately built Free(R, n)
// modules get separate entries.
//
// Any witness the oracle returns is acceptable — determinants are witness
// independent — so the cache stores whichever answer arrived first and
// hands the same one to every later caller. Safe for concurrent use.
type Cache struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[linear.Module]witnessEntry
}

// NewCache returns an empty witness cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{entries: make(map[linear.Module]witnessEntry)}
}

// witness returns the memoized FindBasis verdict for m, consulting the
// oracle at most once per module even under concurrent callers.
//
// Implementation:
//   - Stage 1: read-locked fast path for the common memoized case.
//   - Stage 2: collapse concurrent misses into one singleflight execution;
//     the flight re-checks the map (a loser of the fast-path race may enter
//     after the winner stored), calls FindBasis once, and stores the entry.
//
// Determinism: the first stored verdict wins and is returned forever after.
// Complexity: O(1) map work plus one oracle call per module lifetime.
func (c *Cache) witness(m linear.Module) (*linear.Witness, bool) {
	c.mu.RLock()
	e, hit := c.entries[m]
	c.mu.RUnlock()
	if hit {
		return e.w, e.ok
	}

	// Module identity is pointer identity; %p gives a stable flight key.
	key := fmt.Sprintf("%p", m)
	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		stored, again := c.entries[m]
		c.mu.RUnlock()
		if again {
			return stored, nil
		}

		w, ok := m.FindBasis()
		fresh := witnessEntry{w: w, ok: ok}

		c.mu.Lock()
		c.entries[m] = fresh
		c.mu.Unlock()

		return fresh, nil
	})

	entry := v.(witnessEntry)

	return entry.w, entry.ok
}

// Len reports how many modules have a memoized verdict. Intended for tests
// and diagnostics.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
