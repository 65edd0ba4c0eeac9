// Package registry provides the central "glue" between dependency
// specifications and feature libraries.
//
// The Registry maps a library identifier (the `Library` part of a
// fully-qualified name, e.g. "LibV1") to the callables that library provides,
// keyed by local feature name. Feature libraries implement Module and add
// their callables during startup; the registry is then sealed and stays
// immutable for the rest of the process, so it can be shared by every
// input being processed without locking.
//
// The core never inspects a callable beyond invoking it: a Func receives a
// Call describing which feature to produce and the per-input store to read
// dependencies from and write its result to.
package registry
