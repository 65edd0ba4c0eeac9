package resolver

import (
	"fmt"
	"io"
	"strings"
)

// Describe writes the evaluation plan of every declared feature, one feature
// per paragraph, dependencies first.
func (r *Resolver) Describe(w io.Writer) error {
	resolutions, err := r.ResolveAll()
	if err != nil {
		return err
	}
	for _, res := range resolutions {
		if _, err := fmt.Fprintf(w, "%s\n", res.Feature); err != nil {
			return err
		}
		for i, name := range res.Plan {
			if _, err := fmt.Fprintf(w, "  %2d. %s\n", i+1, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders a plan as a space separated list.
func (p Plan) String() string {
	return strings.Join(p, " ")
}

// Index returns the position of name in the plan, or -1.
func (p Plan) Index(name string) int {
	for i, v := range p {
		if v == name {
			return i
		}
	}
	return -1
}
