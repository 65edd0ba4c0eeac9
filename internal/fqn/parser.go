// internal/fqn/parser.go
package fqn

import "strings"

// Parse splits a raw name into its library, feature and wildcard parts.
// Surrounding blanks of each part are trimmed.
func Parse(raw string) (Name, error) {
	base, wildcard := SplitWildcard(raw)

	library, feature, ok := strings.Cut(base, LibraryDelimiter)
	library = strings.TrimSpace(library)
	if !ok || library == "" {
		return Name{}, &MissingDelimiterError{Name: raw}
	}

	return Name{
		Library:  library,
		Feature:  strings.TrimSpace(feature),
		Wildcard: wildcard,
	}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests
// and package-level tables.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// SplitWildcard separates the wildcard qualifier from a raw name without
// validating the rest of it. The wildcard is returned without its
// delimiter; the base is trimmed of surrounding blanks.
func SplitWildcard(raw string) (base, wildcard string) {
	base, wildcard, _ = strings.Cut(raw, WildcardDelimiter)
	return strings.TrimSpace(base), strings.TrimSpace(wildcard)
}

// Qualify attaches a wildcard to a base name. An empty wildcard returns the
// base unchanged.
func Qualify(base, wildcard string) string {
	if wildcard == "" {
		return base
	}
	return base + WildcardDelimiter + wildcard
}
