package resolver

import (
	"errors"
	"strings"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("dependency cycle detected")

// CycleError reports a cyclic declaration. Path starts and ends with the
// feature that closes the cycle.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle detected: " + strings.Join(e.Path, " -> ")
}

func (e *CycleError) Unwrap() error {
	return ErrCycle
}
