// SPDX-License-Identifier: MIT

package det

// Test-Bridge (White-Box) for the Witness Cache and Options Snapshot
//
// Purpose:
//   - Expose the UNEXPORTED cache lookup and resolved options to det_test
//     ONLY, without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while the
//     det package name grants access to private symbols.
//
// Provided Surface:
//   - (*Cache).Witness_TestOnly: direct cache lookup for dedup assertions
//     that must not involve an engine.
//   - GatherCache_TestOnly / GatherDetOptsLen_TestOnly: resolved option
//     snapshot after defaults and last-writer-wins.
//   - PanicNilCache_TestOnly: panic text without magic strings.
//
// Risks & Maintenance:
//   - Keep bridges in sync with private signatures; tests will catch drift.

import "github.com/katalvlaran/lindet/linear"

// PanicNilCache_TestOnly mirrors the WithCache panic message.
const PanicNilCache_TestOnly = panicNilCache

// Witness_TestOnly forwards to the private memoized lookup.
func (c *Cache) Witness_TestOnly(m linear.Module) (*linear.Witness, bool) {
	return c.witness(m)
}

// GatherCache_TestOnly returns the cache pointer selected after applying
// opts over defaults (nil means "engine builds its own").
func GatherCache_TestOnly(opts ...Option) *Cache {
	return gatherOptions(opts...).cache
}

// GatherDetOptsLen_TestOnly returns how many matrix options survived
// resolution; WithDetOptions replaces wholesale, so only the last call
// counts.
func GatherDetOptsLen_TestOnly(opts ...Option) int {
	return len(gatherOptions(opts...).detOpts)
}
