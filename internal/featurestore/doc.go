// Package featurestore holds the feature values computed for one processed
// input.
//
// # Purpose
//
// A Store memoizes results so that a dependency shared by several features
// is computed at most once per input. It has three independent keyed
// stores, all keyed by the wildcard-qualified feature name:
//
//   - Ints: integer vectors (indices, counts)
//   - Doubles: real vectors (times, voltages, derived values)
//   - Strings: small string metadata and settings
//
// # Check Before Compute
//
// The store never computes anything. CheckCached reports whether a vector
// exists without triggering work, and Get returns an error matching
// ErrNotYetComputed on a miss. The driver is expected to run more of the
// execution plan and retry; a miss is not a bug.
//
// # Lifecycle
//
//  1. **Created** fresh for each input, optionally seeded with settings
//  2. **Mutated** only by the driver while it executes the plan
//  3. **Discarded** with the input; there is no eviction
//
// # Concurrency Model
//
// A Store is owned by exactly one input and is not safe for concurrent use.
// Inputs are processed in parallel by giving each its own Store.
package featurestore
