package engine

import (
	"errors"
	"fmt"
)

// ErrNoPlan is returned when a requested feature has no entry in the table.
var ErrNoPlan = errors.New("no execution plan for feature")

// StepError attributes a failure to the step that produced it.
type StepError struct {
	Feature string // the requested feature
	Step    string // the plan entry being computed
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("evaluating %s: step %s: %v", e.Feature, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
