// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the determinant kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

// DetAlgorithm selects the determinant evaluation strategy.
// Both strategies are exact over any commutative ring and agree on every
// input; they differ only in cost profile.
type DetAlgorithm int

const (
	// DetCofactor is Laplace expansion along the first row.
	// Time O(n!) worst case but with early zero-skips; the practical default
	// for the small dimensions witness matrices have.
	DetCofactor DetAlgorithm = iota

	// DetLeibniz is the permutation-sum definition Σ_σ sgn(σ) Π a[i,σ(i)].
	// Time Θ(n·n!); valuable as an independent cross-check of DetCofactor.
	DetLeibniz
)

// ---------- Defaults (single source of truth) ----------

// DefaultDetAlgorithm is the strategy used when no option is supplied.
const DefaultDetAlgorithm = DetCofactor

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAlgorithmInvalid = "matrix: WithAlgorithm: unknown determinant algorithm"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	algorithm DetAlgorithm // DefaultDetAlgorithm
}

// ---------- Constructors (WithX) ----------

// WithCofactor selects Laplace expansion along the first row (the default).
// Complexity: O(1) to set.
func WithCofactor() Option {
	return func(o *Options) { o.algorithm = DetCofactor }
}

// WithLeibniz selects the permutation-sum definition of the determinant.
// Useful as an algorithm cross-check in tests; Θ(n·n!) — keep n small.
// Complexity: O(1) to set.
func WithLeibniz() Option {
	return func(o *Options) { o.algorithm = DetLeibniz }
}

// WithAlgorithm selects an explicit strategy value.
// Panics on unknown values (programmer error); prefer the named setters.
// Complexity: O(1).
func WithAlgorithm(alg DetAlgorithm) Option {
	if alg != DetCofactor && alg != DetLeibniz {
		panic(panicAlgorithmInvalid)
	}

	// Assign validated algorithm
	return func(o *Options) { o.algorithm = alg }
}

// --------------------------- Option Resolution ---------------------------

// NewDetOptions resolves option setters against documented defaults.
// Most callers never need this; public entry points accept ...Option and
// resolve internally. Exposed for composition with the det package, which
// forwards engine-level determinant options verbatim.
// Complexity: Time O(k) for k=len(opts), Space O(1).
func NewDetOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Stage 1: start from documented defaults (single source of truth).
// Stage 2: apply setters in order; last-writer-wins semantics.
// Complexity: Time O(k), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		algorithm: DefaultDetAlgorithm,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
