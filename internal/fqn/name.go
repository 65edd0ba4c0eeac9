// internal/fqn/name.go
package fqn

import "strings"

// Base returns `Library:Feature`, the part of the name used for dependency
// lookups.
func (n Name) Base() string {
	return n.Library + LibraryDelimiter + n.Feature
}

// String serializes the Name into its canonical `Library:Feature[;Wildcard]`
// representation.
func (n Name) String() string {
	return Qualify(n.Base(), n.Wildcard)
}

// WithWildcard returns a copy of the name qualified by the given wildcard.
func (n Name) WithWildcard(wildcard string) Name {
	n.Wildcard = strings.TrimSpace(wildcard)
	return n
}
