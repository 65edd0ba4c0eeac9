// Package resolver expands a feature into its evaluation plan: the ordered,
// de-duplicated transitive closure of its dependencies, in which every
// dependency precedes the features that need it.
//
// # Traversal
//
// Expansion is a depth-first post-order walk over the dependency map. The
// wildcard of a name is stripped before the map lookup, so every wildcard of
// a feature shares the declared dependency set, and it is carried down to
// dependencies that do not name a wildcard of their own:
//
//	A:root  #A:mid
//	A:mid   #B:leaf
//
//	Resolve("A:root")       -> [B:leaf A:mid A:root]
//	Resolve("A:root;stim1") -> [B:leaf;stim1 A:mid;stim1 A:root;stim1]
//
// Plan entries keep their wildcard because they double as feature store keys.
//
// # Cycles
//
// The walk uses an explicit stack. Re-entering a feature that is still being
// expanded is reported as a *CycleError instead of recursing forever.
//
// # Thread-Safety
//
// A Resolver only reads its map; one instance can serve any number of
// goroutines.
package resolver
