// SPDX-License-Identifier: MIT

// Package det: functional configuration for the determinant engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; each Engine owns its config.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; New consumes ...Option.
package det

import "github.com/katalvlaran/lindet/matrix"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilCache = "det: WithCache: nil cache"
)

// ---------- Public option type (functional) ----------

// Option mutates internal engine options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Opaque by design; New resolves a ...Option list via gatherOptions.
type Options struct {
	cache   *Cache          // nil means "engine builds a private cache"
	detOpts []matrix.Option // forwarded verbatim to matrix.Det
}

// ---------- Constructors (WithX) ----------

// WithCache shares an existing witness cache between engines. Useful when
// several engines evaluate maps over the same long-lived modules.
// Panics on nil (programmer error).
func WithCache(c *Cache) Option {
	if c == nil {
		panic(panicNilCache)
	}

	return func(o *Options) { o.cache = c }
}

// WithDetOptions forwards matrix-level determinant options (kernel choice)
// to every matrix.Det call the engine makes. Later calls replace earlier
// ones entirely; last-writer-wins.
func WithDetOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.detOpts = opts }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Stage 1: zero-value defaults (no shared cache, no matrix options).
// Stage 2: apply setters in order; last-writer-wins semantics.
// Complexity: Time O(k) for k=len(opts), Space O(1).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}

	return o
}
