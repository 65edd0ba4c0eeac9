package linker

import (
	"github.com/specialistvlad/featuredag/internal/fqn"
	"github.com/specialistvlad/featuredag/internal/registry"
)

// Step is one resolved entry of an execution plan.
type Step struct {
	// Name is the wildcard-qualified plan entry; it is also the key the
	// callable stores its result under.
	Name    string
	Feature fqn.Name
	Func    registry.Func
}

// Wildcard returns the wildcard to apply when invoking the step.
func (s Step) Wildcard() string {
	return s.Feature.Wildcard
}

// Entry is the execution plan of one declared feature.
type Entry struct {
	// Feature is the local name of the declared feature, the table key.
	Feature string
	// Declared is the declared fully-qualified name.
	Declared string
	Steps    []Step
}

// Table maps a feature's local name to its ordered steps. Tables are
// immutable once returned by Link.
type Table struct {
	order   []string
	entries map[string]*Entry
}

func newTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// add inserts e unless its key is taken; the first entry wins.
func (t *Table) add(e *Entry) bool {
	if _, exists := t.entries[e.Feature]; exists {
		return false
	}
	t.order = append(t.order, e.Feature)
	t.entries[e.Feature] = e
	return true
}

// Steps returns the steps of feature, in execution order.
func (t *Table) Steps(feature string) ([]Step, bool) {
	e, ok := t.entries[feature]
	if !ok {
		return nil, false
	}
	out := make([]Step, len(e.Steps))
	copy(out, e.Steps)
	return out, true
}

// Entry returns the full entry of feature.
func (t *Table) Entry(feature string) (*Entry, bool) {
	e, ok := t.entries[feature]
	return e, ok
}

// Features returns the table keys in declaration order.
func (t *Table) Features() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.order)
}
