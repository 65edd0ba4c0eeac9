package depspec

import "errors"

// ErrUnopenableSpecification is matched by every error returned when a
// specification source cannot be read.
var ErrUnopenableSpecification = errors.New("could not open the dependency specification")

// UnopenableSpecificationError reports the path that could not be read and
// the underlying cause.
type UnopenableSpecificationError struct {
	Path string
	Err  error
}

func (e *UnopenableSpecificationError) Error() string {
	return "could not open the file " + e.Path + ": " + e.Err.Error()
}

func (e *UnopenableSpecificationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnopenableSpecification) succeed.
func (e *UnopenableSpecificationError) Is(target error) bool {
	return target == ErrUnopenableSpecification
}
