package depspec

// Declaration is one declared feature and its immediate dependencies.
type Declaration struct {
	Name      string
	DependsOn []string
}

// Map is an ordered mapping from a declared feature name to its immediate
// dependencies. Declaration order is preserved. A Map is built once and is
// read-only afterwards, so it can be shared between goroutines.
type Map struct {
	order []string
	deps  map[string][]string
}

func newMap() *Map {
	return &Map{deps: make(map[string][]string)}
}

// FromDeclarations builds a Map from declarations in order. Declaring the
// same name twice appends the new dependencies to the earlier ones.
func FromDeclarations(decls ...Declaration) *Map {
	m := newMap()
	for _, d := range decls {
		m.declare(d.Name, d.DependsOn...)
	}
	return m
}

// declare records name and appends deps that are not yet listed for it.
func (m *Map) declare(name string, deps ...string) {
	existing, ok := m.deps[name]
	if !ok {
		m.order = append(m.order, name)
		existing = []string{}
	}
	for _, dep := range deps {
		if dep == "" || contains(existing, dep) {
			continue
		}
		existing = append(existing, dep)
	}
	m.deps[name] = existing
}

// merge appends every declaration of other into m.
func (m *Map) merge(other *Map) {
	for _, name := range other.order {
		m.declare(name, other.deps[name]...)
	}
}

// Names returns the declared feature names in declaration order.
func (m *Map) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Dependencies returns the immediate dependencies of a declared name, in
// declared order. The second result is false when name was never declared.
func (m *Map) Dependencies(name string) ([]string, bool) {
	deps, ok := m.deps[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(deps))
	copy(out, deps)
	return out, true
}

// Has reports whether name was declared.
func (m *Map) Has(name string) bool {
	_, ok := m.deps[name]
	return ok
}

// Len returns the number of declared features.
func (m *Map) Len() int {
	return len(m.order)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Merge combines maps in order into a new map. Later declarations of an
// already known feature append their new dependencies.
func Merge(maps ...*Map) *Map {
	out := newMap()
	for _, m := range maps {
		if m != nil {
			out.merge(m)
		}
	}
	return out
}
