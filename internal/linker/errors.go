package linker

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/featuredag/internal/fqn"
)

var (
	// ErrMissingVersionDelimiter is matched when a plan entry has no `Library:` prefix.
	ErrMissingVersionDelimiter = fqn.ErrMissingVersionDelimiter
	// ErrUnknownLibrary is matched when a referenced library is not registered.
	ErrUnknownLibrary = errors.New("unknown library")
	// ErrUnknownFeature is matched when a library does not provide a feature.
	ErrUnknownFeature = errors.New("unknown feature")
)

// UnknownLibraryError reports a library that is not registered.
type UnknownLibraryError struct {
	Name    string // the plan entry that referenced it
	Library string
}

func (e *UnknownLibraryError) Error() string {
	return fmt.Sprintf("library [%s] is missing (referenced by %s)", e.Library, e.Name)
}

func (e *UnknownLibraryError) Unwrap() error {
	return ErrUnknownLibrary
}

// UnknownFeatureError reports a feature missing from an otherwise known library.
type UnknownFeatureError struct {
	Name    string
	Library string
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("feature [%s] is missing from library [%s] (referenced by %s)", e.Feature, e.Library, e.Name)
}

func (e *UnknownFeatureError) Unwrap() error {
	return ErrUnknownFeature
}

// FeatureError attributes a linking failure to the declared feature whose
// plan contained the offending entry.
type FeatureError struct {
	Feature string
	Err     error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("linking %s: %v", e.Feature, e.Err)
}

func (e *FeatureError) Unwrap() error {
	return e.Err
}
