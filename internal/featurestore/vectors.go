package featurestore

// Kind names one of the typed stores.
type Kind string

const (
	KindInt    Kind = "int"
	KindDouble Kind = "double"
	KindString Kind = "string"
)

// Number is the element type of a vector store.
type Number interface {
	int | float64
}

// Vectors is a keyed store of vectors of one element type.
type Vectors[T Number] struct {
	kind   Kind
	values map[string][]T
}

func newVectors[T Number](kind Kind) *Vectors[T] {
	return &Vectors[T]{kind: kind, values: make(map[string][]T)}
}

// CheckCached returns the length of the vector stored under name. The
// second result is false when nothing is stored.
func (v *Vectors[T]) CheckCached(name string) (int, bool) {
	vec, ok := v.values[name]
	if !ok {
		return 0, false
	}
	return len(vec), true
}

// Get returns a copy of the vector stored under name.
func (v *Vectors[T]) Get(name string) ([]T, error) {
	vec, ok := v.values[name]
	if !ok {
		return nil, &NotComputedError{Kind: v.kind, Name: name}
	}
	return clone(vec), nil
}

// Set stores a copy of value under name, replacing any previous value.
// A nil value is stored as an empty vector: computed, with no elements.
func (v *Vectors[T]) Set(name string, value []T) {
	v.values[name] = clone(value)
}

// Has reports whether a vector is stored under name.
func (v *Vectors[T]) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Len returns the number of stored vectors.
func (v *Vectors[T]) Len() int {
	return len(v.values)
}

func clone[T Number](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
