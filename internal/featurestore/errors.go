package featurestore

import (
	"errors"
	"fmt"
)

// ErrNotYetComputed is matched by every cache miss.
var ErrNotYetComputed = errors.New("feature not yet computed")

// NotComputedError reports which store missed which name.
type NotComputedError struct {
	Kind Kind
	Name string
}

func (e *NotComputedError) Error() string {
	return fmt.Sprintf("%s feature %q not yet computed", e.Kind, e.Name)
}

func (e *NotComputedError) Unwrap() error {
	return ErrNotYetComputed
}
