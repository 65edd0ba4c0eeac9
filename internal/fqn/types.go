// internal/fqn/types.go
package fqn

import "errors"

const (
	// LibraryDelimiter separates the library identifier from the feature name.
	LibraryDelimiter = ":"
	// WildcardDelimiter introduces the optional wildcard qualifier.
	WildcardDelimiter = ";"
)

// ErrMissingVersionDelimiter is returned when a name carries no `Library:` prefix.
var ErrMissingVersionDelimiter = errors.New("library version is missing")

// MissingDelimiterError reports the name that could not be split.
type MissingDelimiterError struct {
	Name string
}

func (e *MissingDelimiterError) Error() string {
	return "library version is missing in [" + e.Name + "], expected format Lib:Feature"
}

func (e *MissingDelimiterError) Unwrap() error {
	return ErrMissingVersionDelimiter
}

// Name is the structured form of a fully-qualified feature name.
type Name struct {
	Library  string
	Feature  string
	Wildcard string // empty when the name is not qualified
}

// HasWildcard reports whether the name carries a wildcard qualifier.
func (n Name) HasWildcard() bool {
	return n.Wildcard != ""
}
