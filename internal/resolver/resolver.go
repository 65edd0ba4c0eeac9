package resolver

import (
	"github.com/specialistvlad/featuredag/internal/depspec"
	"github.com/specialistvlad/featuredag/internal/fqn"
)

// Plan is an ordered sequence of distinct, wildcard-qualified feature names.
type Plan []string

// Resolver expands features against a fixed dependency map.
type Resolver struct {
	deps *depspec.Map
}

// New creates a resolver over m.
func New(m *depspec.Map) *Resolver {
	return &Resolver{deps: m}
}

// frame is one feature being expanded on the explicit stack.
type frame struct {
	name     string // wildcard-qualified, as it will appear in the plan
	base     string
	wildcard string
	children []string
	next     int
}

// Resolve returns the evaluation plan of name. Names are not validated;
// only cycles are reported.
func (r *Resolver) Resolve(name string) (Plan, error) {
	plan := Plan{}
	done := make(map[string]struct{})
	inProgress := make(map[string]struct{})

	base, wildcard := fqn.SplitWildcard(name)
	stack := []*frame{r.newFrame(base, wildcard)}
	inProgress[base] = struct{}{}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++

			childBase, childWildcard := fqn.SplitWildcard(child)
			if childWildcard == "" {
				childWildcard = top.wildcard
			}
			if _, ok := inProgress[childBase]; ok {
				return nil, cycleError(stack, childBase)
			}
			if _, ok := done[fqn.Qualify(childBase, childWildcard)]; ok {
				continue
			}

			stack = append(stack, r.newFrame(childBase, childWildcard))
			inProgress[childBase] = struct{}{}
			continue
		}

		stack = stack[:len(stack)-1]
		delete(inProgress, top.base)
		if _, ok := done[top.name]; !ok {
			done[top.name] = struct{}{}
			plan = append(plan, top.name)
		}
	}

	return plan, nil
}

func (r *Resolver) newFrame(base, wildcard string) *frame {
	children, _ := r.deps.Dependencies(base)
	return &frame{
		name:     fqn.Qualify(base, wildcard),
		base:     base,
		wildcard: wildcard,
		children: children,
	}
}

// cycleError builds the path from the first occurrence of closing on the
// stack up to closing again.
func cycleError(stack []*frame, closing string) *CycleError {
	start := 0
	for i, f := range stack {
		if f.base == closing {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.base)
	}
	return &CycleError{Path: append(path, closing)}
}

// Resolution is the plan of one declared feature.
type Resolution struct {
	Feature string
	Plan    Plan
}

// ResolveAll resolves every declared feature in declaration order. It stops
// at the first error.
func (r *Resolver) ResolveAll() ([]Resolution, error) {
	names := r.deps.Names()
	out := make([]Resolution, 0, len(names))
	for _, name := range names {
		plan, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Resolution{Feature: name, Plan: plan})
	}
	return out, nil
}
