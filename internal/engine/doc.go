// Package engine is the "Execution Layer" of the application. It walks the
// execution plans produced by the linker for one input at a time, consulting
// the input's feature store before every step so that values shared by
// several features are computed once.
//
// # Check Before Compute
//
// For each step of a requested feature, in order:
//
//  1. if the store already holds the step's name, the step is a cache hit
//     and is skipped;
//  2. otherwise the step's callable is invoked with a registry.Call;
//  3. a callable that succeeds must have stored a value under the step's
//     name, or the evaluation fails with ErrNotYetComputed.
//
// # Concurrency
//
// Steps of one input run sequentially. ProcessInputs evaluates several
// inputs at once, bounded by the worker count; every input gets its own
// feature store while the plan table is shared read-only.
package engine
