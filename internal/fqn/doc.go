// internal/fqn/doc.go

/*
Package fqn provides the structured representation of fully-qualified
feature names, in the canonical format `Library:Feature[;Wildcard]`.

The library part selects the feature library that owns the computation,
the feature part is the feature's local name inside that library, and the
optional wildcard narrows which segment of the input the value applies to
(for example a single stimulus).

Parsing is strict about the `Library:` delimiter and lenient about
everything else; the dependency specification parser deliberately does not
validate names, so this package is where malformed names surface.
*/
package fqn
